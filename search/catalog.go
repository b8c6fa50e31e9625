package search

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed replaces a zero seed so that callers always get the same
// catalog for "no seed".
const defaultSeed int64 = 1

// firstID is the ID of the first generated product.
const firstID = 1000

var (
	adjectives = []string{"Compact", "Deluxe", "Eco", "Rugged", "Smart", "Classic", "Ultra", "Portable"}
	nouns      = []string{"Kettle", "Lamp", "Backpack", "Headphones", "Blender", "Monitor", "Chair", "Drill"}
	categories = []string{"Kitchen", "Lighting", "Outdoor", "Audio", "Office", "Tools"}
)

// rngFromSeed returns a deterministic *rand.Rand; seed==0 uses defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// GenerateCatalog returns n synthetic products sorted by strictly increasing
// ID. Consecutive IDs differ by 1 to 3, so some IDs inside the range are
// absent and make useful "not found" targets. The same (n, seed) always
// yields the same catalog.
//
// Complexity: O(n).
func GenerateCatalog(n int, seed int64) ([]Product, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	rng := rngFromSeed(seed)

	products := make([]Product, n)
	id := firstID
	for i := 0; i < n; i++ {
		adj := adjectives[rng.Intn(len(adjectives))]
		noun := nouns[rng.Intn(len(nouns))]
		price := 5 + rng.Float64()*495
		products[i] = Product{
			ID:       id,
			Name:     fmt.Sprintf("%s %s %d", adj, noun, i+1),
			Category: categories[rng.Intn(len(categories))],
			Price:    math.Round(price*100) / 100,
		}
		id += 1 + rng.Intn(3)
	}
	return products, nil
}

// ShuffledCopy returns a shuffled copy of products; the input is untouched.
func ShuffledCopy(products []Product, seed int64) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	rng := rngFromSeed(seed)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
