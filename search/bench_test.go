package search_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/search"
)

// benchCatalog is shared by the benchmarks; 100k products.
var benchCatalog, _ = search.GenerateCatalog(100_000, 42)

// BenchmarkLinearByID_Last measures the worst case hit for a linear scan.
func BenchmarkLinearByID_Last(b *testing.B) {
	target := benchCatalog[len(benchCatalog)-1].ID
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.LinearByID(benchCatalog, target)
	}
}

// BenchmarkBinaryByID_Last measures the same lookup with binary search,
// including the O(n) sortedness check BinaryByID performs.
func BenchmarkBinaryByID_Last(b *testing.B) {
	target := benchCatalog[len(benchCatalog)-1].ID
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.BinaryByID(benchCatalog, target)
	}
}

// BenchmarkBinary_Last measures the bare O(log n) search.
func BenchmarkBinary_Last(b *testing.B) {
	target := benchCatalog[len(benchCatalog)-1].ID
	cmpID := func(p search.Product) int { return p.ID - target }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Binary(benchCatalog, cmpID)
	}
}
