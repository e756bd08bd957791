package carve

import (
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// openSteps returns the open directions of idx that lead to a neighbour,
// ignoring outward boundary openings.
func openSteps(b *maze.Builder, idx int) cell.Direction {
	open := b.CellAt(idx).Open
	steps := cell.None
	for _, d := range open.Split() {
		if _, ok := b.NeighborToward(idx, d); ok {
			steps |= d
		}
	}
	return steps
}

// isDeadEnd reports a cell with exactly one open step.
func isDeadEnd(b *maze.Builder, idx int) bool {
	return cell.IsDeadEnd(openSteps(b, idx))
}

// DeadEnds lists the cells of b with exactly one open step, ascending.
func DeadEnds(b *maze.Builder) []int {
	var out []int
	for idx := 0; idx < b.NumberOfNodes(); idx++ {
		if isDeadEnd(b, idx) {
			out = append(out, idx)
		}
	}
	return out
}

// Braid sweeps every cell in index order and merges each dead end into a
// random neighbour other than the one it opens to. Cells that stopped being
// dead ends earlier in the sweep are skipped. Returns the number of merges.
//
// With WithCarving(false) the merge only opens the dead end's own side,
// leaving a deliberately one-sided edge; Builder.MakeBidirectionallyConsistent
// resolves those later.
func Braid(b *maze.Builder, opts ...Option) (int, error) {
	o, err := resolve(b, opts)
	if err != nil {
		return 0, err
	}
	merged := 0
	for idx := 0; idx < b.NumberOfNodes(); idx++ {
		if isDeadEnd(b, idx) && braidCell(b, o, idx) {
			merged++
		}
	}
	b.Logger().Debug("braid done", "carving", o.Carving, "merged", merged)
	return merged, nil
}

// BraidRandom merges at most count dead ends, chosen in random order.
// Returns the number of merges.
func BraidRandom(b *maze.Builder, count int, opts ...Option) (int, error) {
	o, err := resolve(b, opts)
	if err != nil {
		return 0, err
	}
	ends := DeadEnds(b)
	rng := b.Rand()
	rng.Shuffle(len(ends), func(i, j int) { ends[i], ends[j] = ends[j], ends[i] })

	merged := 0
	for _, idx := range ends {
		if merged >= count {
			break
		}
		if isDeadEnd(b, idx) && braidCell(b, o, idx) {
			merged++
		}
	}
	b.Logger().Debug("random braid done", "requested", count, "merged", merged)
	return merged, nil
}

// braidCell opens dead end idx toward a random neighbour it is not already
// connected to.
func braidCell(b *maze.Builder, o Options, idx int) bool {
	open := openSteps(b, idx)
	adj := b.Adjacency()
	var candidates []int
	for _, n := range b.Neighbors(idx) {
		if !open.Has(adj.DirectionBetween(idx, n)) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	next := candidates[b.Rand().Intn(len(candidates))]

	if o.Carving {
		return b.CarvePassageIndex(idx, next, o.PreserveExisting)
	}
	if o.PreserveExisting && !b.CellAt(idx).Undefined {
		return false
	}
	return b.AddDirectionsIndex(idx, adj.DirectionBetween(idx, next)) == nil
}
