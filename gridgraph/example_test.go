// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Lattice adjacency
////////////////////////////////////////////////////////////////////////////////

// ExampleLattice_DirectionBetween shows the index layout of a 3×2 lattice:
//
//	3 4 5   (row 1, north)
//	0 1 2   (row 0, south)
func ExampleLattice_DirectionBetween() {
	l, _ := gridgraph.NewLattice(3, 2)
	fmt.Println(l.Neighbors(1))
	fmt.Println(l.DirectionBetween(1, 4), l.DirectionBetween(1, 0))
	// Output:
	// [4 2 0]
	// N W
}

// ExampleLattice_Distances computes grid distances from two corners at once.
func ExampleLattice_Distances() {
	l, _ := gridgraph.NewLattice(4, 1)
	dist, _ := l.Distances([]int{0, 3}, nil)
	fmt.Println(dist)
	// Output:
	// [0 1 1 0]
}
