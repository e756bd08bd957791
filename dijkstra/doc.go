// Package dijkstra provides single-source shortest paths over index graphs
// whose step costs come from a caller-supplied function.
//
// In this module it backs shortest-path carving: distances are computed on
// the lattice from a target cell and every reached cell carves its
// predecessor link, which yields a spanning tree rooted at the target.
//
// See types.go for options and errors, dijkstra.go for the algorithm.
package dijkstra
