// Package metrics derives navigational structure from a *maze.Maze:
// distances from Start and to End, the solution path, per-edge flow
// classification, branch levels, distances to the solution, dead-end
// corridor lengths, and aggregate cell counts.
//
// Computations depend on one another (flows need the traversal from Start,
// branch levels need flows and the solution path). Each Compute method
// records that it ran and runs its prerequisites on demand, so callers may
// invoke them in any order; ComputeAll runs the full chain in the canonical
// order.
//
// Metrics hold no invalidation: after mutating the Builder that produced the
// Maze, create a new Metrics from a fresh snapshot.
//
// Example:
//
//	mt, _ := metrics.New(b.Maze(), metrics.WithRand(b.Rand()))
//	if err := mt.ComputeAll(); err != nil { ... }
//	fmt.Println(mt.Summary().MaxBranchLevel)
package metrics
