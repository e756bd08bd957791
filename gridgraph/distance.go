package gridgraph

import (
	"container/list"
	"fmt"
	"math"
)

// Unreachable is the distance reported for nodes no source can reach.
const Unreachable = math.MaxInt32

// Distances runs a multi-source breadth-first search from every index in
// sources (distance 0) and returns the step distance of every node.
// passable, when non-nil, restricts which neighbour steps are allowed; nil
// walks the full lattice, giving the wall-ignoring grid distance.
// Nodes no source reaches get Unreachable.
//
// Returns ErrOutOfRange if any source is not a node of the lattice.
//
// Complexity: O(W·H) time and memory.
func (l *Lattice) Distances(sources []int, passable LinkFunc) ([]int, error) {
	n := l.NumberOfNodes()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}

	q := list.New()
	for _, s := range sources {
		if !l.Contains(s) {
			return nil, fmt.Errorf("%w: source %d", ErrOutOfRange, s)
		}
		if dist[s] == 0 {
			continue
		}
		dist[s] = 0
		q.PushBack(s)
	}

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(int)
		for _, v := range l.Neighbors(u) {
			if dist[v] != Unreachable {
				continue
			}
			if passable != nil && !passable(u, v) {
				continue
			}
			dist[v] = dist[u] + 1
			q.PushBack(v)
		}
	}
	return dist, nil
}
