// Package bfs provides breadth-first search over any index graph (a lattice,
// a carved maze), returning unweighted shortest-path distances, parent links,
// and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from one start
//     node (BFS) or from a set of source nodes at once (Multi).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-node distance from the nearest source, Unreached otherwise
//   - Parent: per-node predecessor in the BFS tree, NoParent for sources
//   - Source: per-node source the node was reached from
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbour steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbours are enqueued in the order Graph.Neighbors returns them, so the
//	visit sequence is fully reproducible for a given graph.
//
// Complexity (V = NumberOfNodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(m, m.Start())
//	path, err := res.PathTo(m.End())
//
//	res, err := bfs.Multi(lattice, solution, bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if a source index is outside the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
