package carve

import (
	"github.com/katalvlaran/labyrinth/maze"
)

// Kruskal carves a random spanning tree: every adjacent pair is shuffled and
// carved when its endpoints still lie in different sets of a disjoint-set
// forest (path compression, union by rank).
//
// Passages already open on both sides are merged into the forest first, so a
// pre-carved region is extended rather than closed into a loop.
//
// Complexity: O(E·α(V)) after an O(E) shuffle.
func Kruskal(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	n := b.NumberOfNodes()
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		return true
	}

	adj := b.Adjacency()
	var pairs [][2]int
	for u := 0; u < n; u++ {
		for _, v := range b.Neighbors(u) {
			if v <= u {
				continue
			}
			du, dv := adj.DirectionBetween(u, v), adj.DirectionBetween(v, u)
			if b.CellAt(u).Open.Has(du) && b.CellAt(v).Open.Has(dv) {
				union(u, v)
				continue
			}
			pairs = append(pairs, [2]int{u, v})
		}
	}

	rng := b.Rand()
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	carved := 0
	for _, p := range pairs {
		if find(p[0]) == find(p[1]) {
			continue
		}
		if b.CarvePassageIndex(p[0], p[1], o.PreserveExisting) {
			union(p[0], p[1])
			carved++
		}
	}

	b.Logger().Debug("kruskal done", "candidates", len(pairs), "carved", carved)
	return nil
}
