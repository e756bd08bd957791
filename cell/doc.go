// Package cell defines the per-cell value of a maze grid and the stateless
// classification queries built on it.
//
// What:
//
//   - Direction is a set of compass flags (North, East, South, West). A flag
//     present on a cell marks an open edge toward the neighbour in that direction.
//   - State pairs the open-edge set with an Undefined marker. A cell whose
//     Undefined marker is still set has not been decided by any algorithm yet;
//     clearing it ("freezing") locks the cell against preserve-respecting edits.
//   - Classify and the Is* predicates label an open-edge set as a dead end,
//     straight, turn, T-junction or cross-junction.
//
// Orientation:
//
//	Columns grow toward East and rows grow toward North, so North of (c, r)
//	is (c, r+1) and South is (c, r-1).
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free except Split and String.
package cell
