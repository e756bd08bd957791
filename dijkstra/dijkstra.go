// Package dijkstra implements Dijkstra's shortest-path algorithm on index graphs.
//
// It processes nodes in order of increasing distance using a min-heap priority
// queue, relaxing steps and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We treat any step with cost ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal distances pop in push order, so results are deterministic for a given cost function.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: per-node minimum distance (Infinity if unreachable).
//   - prev: per-node predecessor on a shortest path (NoPredecessor for the
//     source and unreachable nodes).
//   - err:  error if inputs are invalid or if a negative cost is produced.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumberOfNodes()
	if cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph   // The input graph; read-only within Dijkstra.
	options Options // Configuration options.
	dist    []int64 // Current best distance from Source.
	prev    []int   // Predecessor on the shortest path.
	visited []bool  // Tracks if a node's distance is finalized.
	pq      nodePQ  // Min-heap of *nodeItem for lazy priority queue.
	seq     int     // Push counter for stable ordering.
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(idx int, d int64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the node with the minimum distance and relaxes its steps.
// It stops when the heap is empty or the minimum distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each step out of u and attempts to improve distances to its neighbours.
func (r *runner) relax(u int) error {
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		w := r.options.Cost(u, v)
		if w < 0 {
			return fmt.Errorf("%w: step %d→%d cost=%d", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// PathTo rebuilds the source -> dest path from a prev slice returned by Dijkstra.
// Returns nil when dest is out of range or has no predecessor chain to a source.
func PathTo(prev []int, dist []int64, dest int) []int {
	if dest < 0 || dest >= len(prev) || dist[dest] == Infinity {
		return nil
	}
	var path []int
	for at := dest; at != NoPredecessor; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	idx  int   // node index
	dist int64 // distance from source
	seq  int   // push order; breaks distance ties
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
