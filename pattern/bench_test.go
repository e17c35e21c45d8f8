package pattern_test

import (
	"testing"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/pattern"
)

// The three matcher generations on the same board and hole position,
// cheapest precondition to broadest coverage.

func BenchmarkCatalog_MatchAt(b *testing.B) {
	c, err := pattern.NewCatalog(4)
	if err != nil {
		b.Fatal(err)
	}
	g, err := grid.New(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.MatchAt(g, g.Empty())
	}
}

func BenchmarkPattern_MatchAt(b *testing.B) {
	cat := pattern.RelCatalog()
	g, err := grid.New(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range cat {
			_, _ = p.MatchAt(g, g.Empty())
		}
	}
}

func BenchmarkHashTable_MatchAt(b *testing.B) {
	h := pattern.NewDefaultHashTable()
	g, err := grid.New(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.MatchAt(g, g.Empty())
	}
}
