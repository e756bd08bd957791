package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// BenchmarkDistances measures a single-source lattice BFS on 500×500 cells.
// Complexity: O(W×H)
func BenchmarkDistances(b *testing.B) {
	l, err := gridgraph.NewLattice(500, 500)
	if err != nil {
		b.Fatalf("setup NewLattice failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Distances([]int{0}, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConnectedComponents measures component discovery on 500×500 cells.
func BenchmarkConnectedComponents(b *testing.B) {
	l, _ := gridgraph.NewLattice(500, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.ConnectedComponents(nil)
	}
}
