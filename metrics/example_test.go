package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/metrics"
)

// ExampleMetrics_ComputeAll analyses a 3×3 comb: a corridor along the south
// row with a tooth rising from every cell.
func ExampleMetrics_ComputeAll() {
	b, _ := maze.New(3, 3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 6}, {1, 4}, {4, 7}, {2, 5}, {5, 8}} {
		b.CarvePassageIndex(e[0], e[1], true)
	}
	mt, _ := metrics.New(b.Maze())
	if err := mt.ComputeAll(); err != nil {
		fmt.Println(err)
		return
	}
	s := mt.Summary()
	fmt.Println("solution:", mt.SolutionPath())
	fmt.Println("dead ends:", s.DeadEnds, "longest:", s.LongestDeadEnd)
	fmt.Println("branch level of 6:", mt.Cell(6).BranchLevel)
	// Output:
	// solution: [0 1 2 5 8]
	// dead ends: 3 longest: 2
	// branch level of 6: 1
}
