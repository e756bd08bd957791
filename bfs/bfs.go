// Package bfs provides breadth-first search over an index graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from its sources,
// with optional hooks, depth limiting, and neighbour filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue *arrayqueue.Queue
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	return Multi(g, []int{start}, opts...)
}

// Multi runs breadth-first search seeded at every index of sources with
// depth 0. Each reached node records the source whose wave reached it first.
// Duplicate sources are visited once.
func Multi(g Graph, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NumberOfNodes()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, s)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: arrayqueue.New(),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Source: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = NoParent
		w.res.Source[i] = NoParent
	}

	// Seed queue with sources (no parent)
	for _, s := range sources {
		if w.res.Depth[s] == Unreached {
			w.enqueue(s, 0, NoParent, s)
		}
	}

	return w.res, w.loop()
}

// enqueue marks idx reached at depth d, records its parent and source,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(idx, d, parent, source int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.res.Source[idx] = source
	w.opts.OnEnqueue(idx, d)
	w.queue.Enqueue(queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem)
	w.opts.OnDequeue(item.idx, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.idx)
	if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.idx) {
		if w.res.Depth[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.idx, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.idx, w.res.Source[item.idx])
	}
}
