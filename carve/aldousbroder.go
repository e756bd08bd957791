package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// AldousBroder carves a uniform spanning tree by random walk.
//
// Cells whose Undefined marker is already clear count as visited from the
// start, so a frozen region is walked over but never carved into. The walk
// begins at Options.Start, or at a random unvisited cell, and moves to a
// uniformly random neighbour each step, carving only when it first enters an
// unvisited cell.
//
// The walk has no intrinsic bound. With WithMaxSteps(n) it stops after n
// moves and returns ErrIncomplete, leaving the partial carve in place.
func AldousBroder(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	rng := b.Rand()
	visited, remaining := seedVisited(b)
	if remaining == 0 {
		return nil
	}

	curr := o.Start
	if curr < 0 {
		curr = randomUnvisited(rng, visited, remaining)
	}
	if !visited[curr] {
		visited[curr] = true
		remaining--
	}

	steps := 0
	for remaining > 0 {
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return fmt.Errorf("%w: aldous-broder stopped after %d steps, %d cells unvisited",
				ErrIncomplete, steps, remaining)
		}
		nbrs := b.Neighbors(curr)
		if len(nbrs) == 0 {
			return fmt.Errorf("%w: cell %d has no neighbours, %d cells unvisited",
				ErrIncomplete, curr, remaining)
		}
		next := nbrs[rng.Intn(len(nbrs))]
		if !visited[next] {
			b.CarvePassageIndex(curr, next, o.PreserveExisting)
			visited[next] = true
			remaining--
		}
		curr = next
		steps++
	}

	b.Logger().Debug("aldous-broder done", "steps", steps)
	return nil
}

// seedVisited marks every decided cell as visited and returns how many cells
// are still unvisited.
func seedVisited(b *maze.Builder) ([]bool, int) {
	visited := make([]bool, b.NumberOfNodes())
	remaining := 0
	for i := range visited {
		if b.CellAt(i).Undefined {
			remaining++
		} else {
			visited[i] = true
		}
	}
	return visited, remaining
}

// randomUnvisited picks uniformly among the remaining unvisited cells.
func randomUnvisited(rng *rand.Rand, visited []bool, remaining int) int {
	k := rng.Intn(remaining)
	for i, v := range visited {
		if v {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}
	return -1
}
