// Package search compares linear and binary search over a synthetic
// product catalog.
//
// What
//
//   - Linear scans items left to right until match reports true.
//     Works on any slice, sorted or not. Time O(n).
//   - Binary halves a sorted slice on every probe using a three-way
//     comparator. Time O(log n), but only valid on sorted input.
//   - Both return the index of the hit (or NotFound) together with Stats,
//     the number of element comparisons performed.
//   - GenerateCatalog builds a deterministic product catalog sorted by ID,
//     and Compare times both algorithms on the same targets.
//
// Why
//
//	The comparison count is the whole lesson: on 100 000 products a linear
//	scan may need 100 000 comparisons where binary search needs at most 17.
//	The price is the sortedness precondition, which BinaryByID checks and
//	reports as ErrUnsorted.
//
// Complexity (n = len(items))
//
//   - Linear: O(n) time, O(1) memory.
//   - Binary: O(log n) time, O(1) memory.
//   - IsSortedByID: O(n).
//
// Usage
//
//	catalog, _ := search.GenerateCatalog(10_000, 42)
//	i, st := search.LinearByID(catalog, 4711)
//	j, st2, err := search.BinaryByID(catalog, 4711)
//
// Errors
//
//   - ErrBadSize   if a catalog of fewer than one product is requested.
//   - ErrUnsorted  if binary search is asked to run on an unsorted catalog.
//   - ErrBadRounds if Compare is given rounds < 1.
//
// Non-goal: this is not a search index. No hashing, no caching.
package search
