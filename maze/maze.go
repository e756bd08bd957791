package maze

import (
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Maze is a read-only graph view over a builder's grid plus its Start/End
// cells. A step a→b exists when a is adjacent to b and a's state opens the
// direction toward b.
type Maze struct {
	grid  *DirectionGrid
	adj   Adjacency
	start int
	end   int
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.height }

// NumberOfNodes returns the number of cells.
func (m *Maze) NumberOfNodes() int { return m.grid.Len() }

// Start returns the start cell index.
func (m *Maze) Start() int { return m.start }

// End returns the end cell index.
func (m *Maze) End() int { return m.end }

// Adjacency returns the adjacency the maze was carved on.
func (m *Maze) Adjacency() Adjacency { return m.adj }

// Index maps (col,row) to row*Width+col.
func (m *Maze) Index(col, row int) int { return row*m.grid.width + col }

// Coordinate maps an index back to (col,row).
func (m *Maze) Coordinate(idx int) (col, row int) {
	return idx % m.grid.width, idx / m.grid.width
}

// State returns the full state of cell idx.
func (m *Maze) State(idx int) cell.State { return m.grid.GetIndex(idx) }

// Directions returns the open directions of cell idx.
func (m *Maze) Directions(idx int) cell.Direction { return m.grid.GetIndex(idx).Open }

// DirectionBetween returns the adjacency direction from -> to.
func (m *Maze) DirectionBetween(from, to int) cell.Direction {
	return m.adj.DirectionBetween(from, to)
}

// HasEdge reports whether the step from -> to is open.
func (m *Maze) HasEdge(from, to int) bool {
	d := m.adj.DirectionBetween(from, to)
	return d != cell.None && m.Directions(from).Has(d)
}

// Neighbors returns the cells reachable in one open step from idx, in the
// adjacency's neighbour order.
func (m *Maze) Neighbors(idx int) []int {
	open := m.Directions(idx)
	out := make([]int, 0, open.Count())
	for _, n := range m.adj.Neighbors(idx) {
		if d := m.adj.DirectionBetween(idx, n); d != cell.None && open.Has(d) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborToward returns the adjacency neighbour of idx along dir,
// regardless of whether the edge is open.
func (m *Maze) NeighborToward(idx int, dir cell.Direction) (int, bool) {
	for _, n := range m.adj.Neighbors(idx) {
		if m.adj.DirectionBetween(idx, n) == dir {
			return n, true
		}
	}
	return -1, false
}

// Edges lists every adjacent pair with at least one open side, once, with
// From < To and Dir oriented From -> To.
func (m *Maze) Edges() []gridgraph.Edge {
	var out []gridgraph.Edge
	for idx := 0; idx < m.NumberOfNodes(); idx++ {
		for _, n := range m.adj.Neighbors(idx) {
			if n <= idx {
				continue
			}
			if m.HasEdge(idx, n) || m.HasEdge(n, idx) {
				out = append(out, gridgraph.Edge{From: idx, To: n, Dir: m.adj.DirectionBetween(idx, n)})
			}
		}
	}
	return out
}

// NumberOfEdges returns len(Edges()).
func (m *Maze) NumberOfEdges() int {
	return len(m.Edges())
}

// IsConsistent reports whether every open step has its mirrored step.
func (m *Maze) IsConsistent() bool {
	for idx := 0; idx < m.NumberOfNodes(); idx++ {
		for _, n := range m.Neighbors(idx) {
			if !m.HasEdge(n, idx) {
				return false
			}
		}
	}
	return true
}

// Walk runs a breadth-first traversal through open steps from cell from.
func (m *Maze) Walk(from int, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.BFS(m, from, opts...)
}

// IsConnected reports whether every cell is reachable from cell 0.
func (m *Maze) IsConnected() bool {
	res, err := m.Walk(0)
	if err != nil {
		return false
	}
	return len(res.Order) == m.NumberOfNodes()
}

// IsPerfect reports a spanning tree: consistent, connected, and exactly
// NumberOfNodes-1 edges.
func (m *Maze) IsPerfect() bool {
	return m.IsConsistent() && m.IsConnected() && m.NumberOfEdges() == m.NumberOfNodes()-1
}

// DeadEnds returns the cells with exactly one open step, ascending.
func (m *Maze) DeadEnds() []int {
	var out []int
	for idx := 0; idx < m.NumberOfNodes(); idx++ {
		if len(m.Neighbors(idx)) == 1 {
			out = append(out, idx)
		}
	}
	return out
}
