package search

import (
	"errors"
	"fmt"
)

// NotFound is the index returned when no element matches.
const NotFound = -1

// Sentinel errors for catalog generation and searching.
var (
	// ErrBadSize is returned when the requested catalog size is < 1.
	ErrBadSize = errors.New("search: catalog size must be positive")

	// ErrUnsorted is returned when binary search is run on unsorted input.
	ErrUnsorted = errors.New("search: catalog is not sorted by ID")

	// ErrBadRounds is returned when Compare is asked for fewer than one round.
	ErrBadRounds = errors.New("search: rounds must be positive")
)

// Product is one catalog entry.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    float64
}

// String renders the product as "#ID Name (Category) $Price".
func (p Product) String() string {
	return fmt.Sprintf("#%d %s (%s) $%.2f", p.ID, p.Name, p.Category, p.Price)
}

// Stats records the work a search performed.
type Stats struct {
	// Comparisons counts how many elements were inspected.
	Comparisons int
}
