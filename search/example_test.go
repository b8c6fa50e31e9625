package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/search"
)

// ExampleBinaryByID compares the work both algorithms do on a small
// hand-made catalog sorted by ID.
func ExampleBinaryByID() {
	catalog := []search.Product{
		{ID: 101, Name: "Eco Kettle", Category: "Kitchen", Price: 29.90},
		{ID: 104, Name: "Smart Lamp", Category: "Lighting", Price: 45.00},
		{ID: 105, Name: "Rugged Backpack", Category: "Outdoor", Price: 79.99},
		{ID: 109, Name: "Ultra Headphones", Category: "Audio", Price: 199.00},
		{ID: 112, Name: "Classic Chair", Category: "Office", Price: 120.50},
		{ID: 118, Name: "Portable Drill", Category: "Tools", Price: 89.00},
		{ID: 121, Name: "Deluxe Blender", Category: "Kitchen", Price: 64.25},
	}

	for _, id := range []int{118, 110} {
		li, ls := search.LinearByID(catalog, id)
		bi, bs, err := search.BinaryByID(catalog, id)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("id %d: linear idx=%d (%d cmp), binary idx=%d (%d cmp)\n",
			id, li, ls.Comparisons, bi, bs.Comparisons)
	}
	// Output:
	// id 118: linear idx=5 (6 cmp), binary idx=5 (2 cmp)
	// id 110: linear idx=-1 (7 cmp), binary idx=-1 (3 cmp)
}
