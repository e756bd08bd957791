// Package maze holds the mutable carving model of a grid maze and the
// read-only snapshot taken from it.
//
// What:
//
//   - DirectionGrid stores one cell.State per cell and notifies observers of
//     every change with (row, column, newValue, oldValue).
//   - Builder owns a DirectionGrid, the adjacency it is carved on, one random
//     generator, and the Start/End cells. It exposes the carving, walling,
//     region, freeze and consistency primitives every algorithm works through.
//   - Maze is the read-only graph view returned by Builder.Maze: neighbours
//     through open edges, edge enumeration, connectivity and traversal.
//
// Preserve policy:
//
//	CarvePassage and AddWall take a preserve flag. With preserve set, an edit
//	is applied only if the touched cells still carry their Undefined marker;
//	otherwise nothing changes and the call reports false. Freeze clears the
//	marker and so locks a cell against preserve-respecting edits.
//
// Sharing:
//
//	A Builder is a single-writer resource. Algorithms run against it one
//	after another; nothing here is safe for concurrent mutation. A Maze keeps
//	a reference to the builder's grid, so later mutations show through it and
//	metrics computed earlier become stale.
//
// Errors:
//
//   - ErrOutOfRange: a cell or region outside [0,Width)×[0,Height).
//   - ErrDimensionMismatch: an adjacency whose size differs from the builder.
package maze
