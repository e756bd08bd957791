package carve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/maze"
)

// ShortestPath carves the shortest-path tree rooted at target: a
// single-source search runs from target over the Builder's adjacency, and
// every reached cell is carved to its predecessor. The result is a spanning
// tree of the reached cells.
//
// Step costs come from Options.Cost, else random per-edge costs
// (WithRandomCosts), else 1. Every step direction is taken from the
// adjacency's DirectionBetween. WithMaxCost leaves cells beyond that path
// cost uncarved.
//
// Returns maze.ErrOutOfRange for a bad target and dijkstra.ErrNegativeWeight
// for a negative cost.
func ShortestPath(b *maze.Builder, target int, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	if !b.Contains(target) {
		return fmt.Errorf("%w: target cell %d", maze.ErrOutOfRange, target)
	}

	_, prev, err := dijkstra.Dijkstra(b.Adjacency(), searchOptions(b, o, target)...)
	if err != nil {
		return err
	}

	carved := 0
	for idx, p := range prev {
		if p == dijkstra.NoPredecessor {
			continue
		}
		if b.CarvePassageIndex(idx, p, o.PreserveExisting) {
			carved++
		}
	}

	b.Logger().Debug("shortest path carve done", "target", target, "carved", carved)
	return nil
}

// ShortestPathBetween carves only the cheapest route from -> to and returns
// it. Returns ErrNoPath when to is unreachable.
func ShortestPathBetween(b *maze.Builder, from, to int, opts ...Option) ([]int, error) {
	o, err := resolve(b, opts)
	if err != nil {
		return nil, err
	}
	if !b.Contains(from) || !b.Contains(to) {
		return nil, fmt.Errorf("%w: path %d -> %d", maze.ErrOutOfRange, from, to)
	}

	dist, prev, err := dijkstra.Dijkstra(b.Adjacency(), searchOptions(b, o, from)...)
	if err != nil {
		return nil, err
	}
	path := dijkstra.PathTo(prev, dist, to)
	if path == nil {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, from, to)
	}
	CarvePath(b, path, o.PreserveExisting)
	return path, nil
}

// searchOptions translates carve options into a dijkstra run from source.
func searchOptions(b *maze.Builder, o Options, source int) []dijkstra.Option {
	out := []dijkstra.Option{
		dijkstra.Source(source),
		dijkstra.WithCost(stepCost(b, o)),
	}
	if o.MaxCost > 0 {
		out = append(out, dijkstra.WithMaxDistance(o.MaxCost))
	}
	return out
}

// stepCost adapts Options to a dijkstra.CostFunc.
func stepCost(b *maze.Builder, o Options) dijkstra.CostFunc {
	adj := b.Adjacency()
	switch {
	case o.Cost != nil:
		return func(from, to int) int64 {
			return o.Cost(from, to, adj.DirectionBetween(from, to), b.CellAt(from), b.CellAt(to))
		}
	case o.RandomCostMax > 0:
		rng := b.Rand()
		costs := make(map[[2]int]int64)
		return func(from, to int) int64 {
			key := [2]int{from, to}
			if to < from {
				key = [2]int{to, from}
			}
			c, ok := costs[key]
			if !ok {
				c = 1 + rng.Int63n(o.RandomCostMax)
				costs[key] = c
			}
			return c
		}
	default:
		return func(int, int) int64 { return 1 }
	}
}

// CarvePath carves consecutive cells of path and returns how many steps were
// carved. Rejected steps are skipped.
func CarvePath(b *maze.Builder, path []int, preserve bool) int {
	carved := 0
	for i := 0; i+1 < len(path); i++ {
		if b.CarvePassageIndex(path[i], path[i+1], preserve) {
			carved++
		}
	}
	return carved
}

// PathCost sums cost over the consecutive steps of path.
func PathCost(b *maze.Builder, path []int, cost CostFunc) int64 {
	adj := b.Adjacency()
	var total int64
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		total += cost(from, to, adj.DirectionBetween(from, to), b.CellAt(from), b.CellAt(to))
	}
	return total
}
