package carve

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/labyrinth/maze"
)

// RecursiveBacktracking carves a depth-first spanning tree from Options.Start
// (default: the Builder's Start cell).
//
// The walk keeps its own stack and visited set rather than recursing or
// reading the grid, so it handles large grids and carves rejected by the
// preserve policy: a neighbour whose carve fails is simply dropped from the
// candidate list of the current cell.
//
// Complexity: O(V + E) time, O(V) memory.
func RecursiveBacktracking(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	start := o.Start
	if start < 0 {
		start = b.Start()
	}

	rng := b.Rand()
	visited := make([]bool, b.NumberOfNodes())
	visited[start] = true
	stack := arraystack.New()
	stack.Push(start)
	carved := 0

	for !stack.Empty() {
		top, _ := stack.Peek()
		curr := top.(int)

		var candidates []int
		for _, n := range b.Neighbors(curr) {
			if !visited[n] {
				candidates = append(candidates, n)
			}
		}

		advanced := false
		for len(candidates) > 0 {
			i := rng.Intn(len(candidates))
			next := candidates[i]
			candidates[i] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]

			if b.CarvePassageIndex(curr, next, o.PreserveExisting) {
				visited[next] = true
				stack.Push(next)
				carved++
				advanced = true
				break
			}
		}
		if !advanced {
			stack.Pop()
		}
	}

	b.Logger().Debug("recursive backtracking done", "start", start, "carved", carved)
	return nil
}
