// Package labyrinth generates rectangular grid mazes and measures them.
//
// A maze is a W×H grid of cells. Each cell stores the directions it is open
// toward plus an Undefined marker saying whether later carving may still
// change it. Carving algorithms turn an undefined grid into passages, and the
// metrics engine walks the finished maze to compute the solution path,
// distances, edge flows, branch levels and cell shape counts.
//
// Packages:
//
//	cell/         direction bitmask, cell state and shape classification
//	gridgraph/    4-neighbour lattice adjacency, components and grid distance
//	bfs/          breadth-first walks over any adjacency
//	dijkstra/     weighted shortest paths over the lattice
//	maze/         Builder (mutable grid with preserve policy) and Maze views
//	carve/        generators and post-processing passes (braid, merge, trim)
//	metrics/      solution, distance, flow and branch metrics
//	generator/    request/report pipeline tying carve and metrics together
//	config/       YAML profile, .env and MAZE_* environment settings
//	httpapi/      gin HTTP service with Prometheus metrics
//	cmd/mazegen   cobra CLI: generate, algorithms, serve
//
// Orientation: row 0 is the southern row, North increases the row, and cell
// idx = row*W + col. Cell 0 is the default start (opened South) and the last
// cell the default end (opened East).
//
// Quick ASCII example of a 3×2 maze:
//
//	+---+---+---+
//	|           E
//	+   +---+---+
//	| S         |
//	+   +---+---+
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth
