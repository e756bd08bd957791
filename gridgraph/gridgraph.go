package gridgraph

import "github.com/katalvlaran/labyrinth/cell"

// NewLattice constructs a width×height lattice.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func NewLattice(width, height int, opts ...Option) (*Lattice, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Lattice{
		width:     width,
		height:    height,
		nodeLabel: o.NodeLabel,
		edgeLabel: o.EdgeLabel,
	}, nil
}

// Width returns the number of columns.
func (l *Lattice) Width() int { return l.width }

// Height returns the number of rows.
func (l *Lattice) Height() int { return l.height }

// NumberOfNodes returns Width*Height.
func (l *Lattice) NumberOfNodes() int { return l.width * l.height }

// NumberOfEdges returns the count of lattice edges, 2WH-W-H.
func (l *Lattice) NumberOfEdges() int {
	return 2*l.width*l.height - l.width - l.height
}

// InBounds reports whether (col,row) lies within the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(col, row int) bool {
	return col >= 0 && col < l.width && row >= 0 && row < l.height
}

// Contains reports whether idx is a valid node index.
func (l *Lattice) Contains(idx int) bool {
	return idx >= 0 && idx < l.width*l.height
}

// Index maps (col,row) to a row-major index: row*Width + col.
// Complexity: O(1).
func (l *Lattice) Index(col, row int) int {
	return row*l.width + col
}

// Coordinate converts a row-major index back to (col,row).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (col, row int) {
	return idx % l.width, idx / l.width
}

// Neighbor returns the index one step from idx along the single direction dir.
// ok is false on the boundary, for an invalid idx, or when dir is not a single flag.
func (l *Lattice) Neighbor(idx int, dir cell.Direction) (int, bool) {
	if !l.Contains(idx) || dir.Ordinal() < 0 {
		return -1, false
	}
	col, row := l.Coordinate(idx)
	dc, dr := dir.Offset()
	nc, nr := col+dc, row+dr
	if !l.InBounds(nc, nr) {
		return -1, false
	}
	return l.Index(nc, nr), true
}

// Neighbors returns the in-bounds neighbours of idx in North, East, South, West order.
// Complexity: O(1).
func (l *Lattice) Neighbors(idx int) []int {
	out := make([]int, 0, 4)
	for _, d := range cell.Compass {
		if n, ok := l.Neighbor(idx, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// DirectionBetween returns the single direction leading from -> to, or
// cell.None when the two indices are not lattice neighbours.
// This is the one canonical index-pair to direction mapping of the module.
func (l *Lattice) DirectionBetween(from, to int) cell.Direction {
	if !l.Contains(from) || !l.Contains(to) {
		return cell.None
	}
	fc, fr := l.Coordinate(from)
	tc, tr := l.Coordinate(to)
	switch {
	case tc == fc && tr == fr+1:
		return cell.North
	case tc == fc+1 && tr == fr:
		return cell.East
	case tc == fc && tr == fr-1:
		return cell.South
	case tc == fc-1 && tr == fr:
		return cell.West
	}
	return cell.None
}

// ContainsEdge reports whether from and to are lattice neighbours.
func (l *Lattice) ContainsEdge(from, to int) bool {
	return l.DirectionBetween(from, to) != cell.None
}

// Edges enumerates every lattice edge once, oriented East or North from the
// lower index, in ascending From order.
// Complexity: O(W×H).
func (l *Lattice) Edges() []Edge {
	out := make([]Edge, 0, l.NumberOfEdges())
	for idx := 0; idx < l.NumberOfNodes(); idx++ {
		for _, d := range [2]cell.Direction{cell.East, cell.North} {
			if n, ok := l.Neighbor(idx, d); ok {
				out = append(out, Edge{From: idx, To: n, Dir: d})
			}
		}
	}
	return out
}

// NodeLabel returns the label of node idx.
func (l *Lattice) NodeLabel(idx int) string {
	col, row := l.Coordinate(idx)
	return l.nodeLabel(col, row)
}

// EdgeLabel returns the label of the edge leaving idx along dir.
func (l *Lattice) EdgeLabel(idx int, dir cell.Direction) string {
	col, row := l.Coordinate(idx)
	return l.edgeLabel(col, row, dir)
}
