// Package carve implements maze generation strategies over a *maze.Builder.
//
// Every algorithm works only through the Builder's public contract, so any
// of them may run on the same Builder one after another: a region stamped and
// frozen by one pass is respected by the next when PreserveExisting is set.
//
// Spanning-tree generators:
//
//	– RecursiveBacktracking: depth-first walk with an explicit stack.
//	– AldousBroder:          unbiased random walk (unbounded, see WithMaxSteps).
//	– Wilson:                loop-erased random walk (unbounded, see WithMaxSteps).
//	– BinaryTree:            one pass, East or North per cell.
//	– RecursiveDivision:     opens a region and subdivides it with walls.
//	– Kruskal:               shuffled edges joined through union-find.
//	– ShortestPath:          shortest-path tree toward a target cell.
//
// Post-processing passes:
//
//	– Braid / BraidRandom:   merge dead ends into a neighbour.
//	– MergeWalls:            remove walls in score order.
//	– TrimDeadEnds:          turn dead ends solid, pass by pass.
//
// Failure semantics: an individual carve or wall rejected by the Builder
// (non-adjacent cells, or a frozen cell under PreserveExisting) is skipped
// silently. Only invalid input is an error: a nil builder, an out-of-range
// start or region, a broken option, or a random walk stopped by its step
// ceiling (ErrIncomplete; the partially carved Builder is left as is).
//
// Randomness comes from Builder.Rand, so a seeded Builder reproduces the
// same maze for the same sequence of calls.
package carve
