package search

import (
	"cmp"
	"fmt"
	"time"
)

// Row is the outcome of searching one target with both algorithms.
type Row struct {
	Target      int
	LinearIndex int
	BinaryIndex int
	LinearStats Stats
	BinaryStats Stats
	// LinearTime and BinaryTime are mean wall-clock durations per round.
	LinearTime time.Duration
	BinaryTime time.Duration
}

// Found reports whether the target exists in the catalog.
func (r Row) Found() bool { return r.LinearIndex != NotFound }

// Report collects the rows of a Compare run.
type Report struct {
	Size   int
	Rounds int
	Rows   []Row
}

// Comparisons returns the total comparisons made by each algorithm.
func (r Report) Comparisons() (linear, binary int) {
	for _, row := range r.Rows {
		linear += row.LinearStats.Comparisons
		binary += row.BinaryStats.Comparisons
	}
	return linear, binary
}

// Elapsed returns the summed mean durations of each algorithm.
func (r Report) Elapsed() (linear, binary time.Duration) {
	for _, row := range r.Rows {
		linear += row.LinearTime
		binary += row.BinaryTime
	}
	return linear, binary
}

// Speedup is the ratio of linear to binary comparisons. Unlike timings it
// is deterministic. Returns 0 when nothing was compared.
func (r Report) Speedup() float64 {
	l, b := r.Comparisons()
	if b == 0 {
		return 0
	}
	return float64(l) / float64(b)
}

// Compare searches every target in products with both algorithms, repeating
// each search rounds times to smooth out timer resolution.
// products must be sorted by ID (ErrUnsorted otherwise); the check is done
// once up front so that it does not pollute the binary search timings.
func Compare(products []Product, targets []int, rounds int) (Report, error) {
	if rounds < 1 {
		return Report{}, fmt.Errorf("%w: got %d", ErrBadRounds, rounds)
	}
	if !IsSortedByID(products) {
		return Report{}, ErrUnsorted
	}

	rep := Report{Size: len(products), Rounds: rounds, Rows: make([]Row, 0, len(targets))}
	for _, target := range targets {
		row := Row{Target: target}

		start := time.Now()
		for i := 0; i < rounds; i++ {
			row.LinearIndex, row.LinearStats = LinearByID(products, target)
		}
		row.LinearTime = time.Since(start) / time.Duration(rounds)

		byID := func(p Product) int { return cmp.Compare(p.ID, target) }
		start = time.Now()
		for i := 0; i < rounds; i++ {
			row.BinaryIndex, row.BinaryStats = Binary(products, byID)
		}
		row.BinaryTime = time.Since(start) / time.Duration(rounds)

		rep.Rows = append(rep.Rows, row)
	}
	return rep, nil
}
