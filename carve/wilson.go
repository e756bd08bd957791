package carve

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/labyrinth/maze"
)

// Wilson carves a uniform spanning tree with loop-erased random walks.
//
// The tree starts from the decided cells (as in AldousBroder) or, if there
// are none, from Options.Start or a random cell. Each walk starts at an
// unvisited cell, erases any loop it closes, and when it reaches the tree its
// path is carved and joined to it. Walk starts are taken in a random
// permutation of the cells.
//
// Like AldousBroder the walks are unbounded; WithMaxSteps(n) caps the total
// number of moves and returns ErrIncomplete.
func Wilson(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	rng := b.Rand()
	n := b.NumberOfNodes()
	inTree, remaining := seedVisited(b)
	if remaining == 0 {
		return nil
	}
	if remaining == n {
		root := o.Start
		if root < 0 {
			root = rng.Intn(n)
		}
		inTree[root] = true
		remaining--
	}

	pos := make([]int, n) // position of a cell in the current walk, -1 if absent
	for i := range pos {
		pos[i] = -1
	}
	path := arraylist.New()
	steps := 0

	for _, origin := range rng.Perm(n) {
		if inTree[origin] {
			continue
		}
		path.Clear()
		path.Add(origin)
		pos[origin] = 0
		curr := origin

		for {
			if o.MaxSteps > 0 && steps >= o.MaxSteps {
				return fmt.Errorf("%w: wilson stopped after %d steps, %d cells unvisited",
					ErrIncomplete, steps, remaining)
			}
			nbrs := b.Neighbors(curr)
			if len(nbrs) == 0 {
				return fmt.Errorf("%w: cell %d has no neighbours, %d cells unvisited",
					ErrIncomplete, curr, remaining)
			}
			next := nbrs[rng.Intn(len(nbrs))]
			steps++

			if inTree[next] {
				path.Add(next)
				break
			}
			if p := pos[next]; p >= 0 {
				// loop erasure: drop everything walked since next
				for path.Size() > p+1 {
					v, _ := path.Get(path.Size() - 1)
					pos[v.(int)] = -1
					path.Remove(path.Size() - 1)
				}
				curr = next
				continue
			}
			pos[next] = path.Size()
			path.Add(next)
			curr = next
		}

		cells := path.Values()
		for i := 0; i+1 < len(cells); i++ {
			from, to := cells[i].(int), cells[i+1].(int)
			b.CarvePassageIndex(from, to, o.PreserveExisting)
			inTree[from] = true
			pos[from] = -1
			remaining--
		}
	}

	b.Logger().Debug("wilson done", "steps", steps)
	return nil
}
