package search

import (
	"cmp"
	"fmt"
	"strings"
)

// Linear returns the index of the first item for which match is true,
// or NotFound. It inspects items left to right.
func Linear[T any](items []T, match func(T) bool) (int, Stats) {
	var st Stats
	for i, it := range items {
		st.Comparisons++
		if match(it) {
			return i, st
		}
	}
	return NotFound, st
}

// Binary searches sorted items using probe, which must return a negative
// number when the probed item sorts before the target, zero on a match and a
// positive number when it sorts after. On unsorted input the result is
// unspecified.
//
// Algorithm:
//  1. lo, hi = 0, len(items)-1
//  2. while lo <= hi: mid = lo + (hi-lo)/2
//     c = probe(items[mid]); c == 0 → hit; c < 0 → lo = mid+1; else hi = mid-1
//  3. NotFound
func Binary[T any](items []T, probe func(T) int) (int, Stats) {
	var st Stats
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		st.Comparisons++
		switch c := probe(items[mid]); {
		case c == 0:
			return mid, st
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound, st
}

// LinearByID finds the product with the given ID by scanning.
func LinearByID(products []Product, id int) (int, Stats) {
	return Linear(products, func(p Product) bool { return p.ID == id })
}

// LinearByName finds the first product whose name equals name, ignoring case.
// Names are not sorted, so only a linear scan applies.
func LinearByName(products []Product, name string) (int, Stats) {
	return Linear(products, func(p Product) bool { return strings.EqualFold(p.Name, name) })
}

// BinaryByID finds the product with the given ID in a catalog sorted by ID.
// Returns ErrUnsorted if the precondition does not hold.
func BinaryByID(products []Product, id int) (int, Stats, error) {
	if !IsSortedByID(products) {
		return NotFound, Stats{}, fmt.Errorf("%w: cannot binary search for #%d", ErrUnsorted, id)
	}
	i, st := Binary(products, func(p Product) int { return cmp.Compare(p.ID, id) })
	return i, st, nil
}

// IsSortedByID reports whether IDs are in non-decreasing order.
func IsSortedByID(products []Product) bool {
	for i := 1; i < len(products); i++ {
		if products[i-1].ID > products[i].ID {
			return false
		}
	}
	return true
}
