// Package gridgraph treats a rectangular grid of cells as a 4-neighbour
// lattice graph: the adjacency every maze in this module is carved on.
//
// What:
//
//   - Lattice maps (column, row) to a row-major index row*Width+column and back.
//   - Neighbors, DirectionBetween and ContainsEdge answer adjacency questions
//     between indices; Edges enumerates every lattice edge once.
//   - NodeLabel / EdgeLabel decorate nodes and edges through pluggable
//     label functions (see WithNodeLabel, WithEdgeLabel).
//   - Distances runs a multi-source breadth-first search over the lattice,
//     optionally restricted by a passability predicate.
//   - ConnectedComponents groups indices that a link predicate joins.
//
// Why:
//
//   - Carving algorithms need a fixed, immutable neighbourhood to walk.
//   - Metrics compare maze distances against the "as the crow flies" lattice
//     distance, which ignores walls.
//
// Orientation:
//
//	Row 0 is the southern row. North of index i is i+Width, East is i+1.
//
// Complexity:
//
//   - Index, Coordinate, Neighbor, DirectionBetween, ContainsEdge: O(1).
//   - Distances, ConnectedComponents: O(W×H) time and memory.
//   - Edges: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrOutOfRange: a source index lies outside the lattice.
package gridgraph
