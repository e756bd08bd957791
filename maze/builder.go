package maze

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Builder is the mutable carving model: a DirectionGrid, the adjacency it is
// carved on, one random generator, and the designated Start/End cells.
type Builder struct {
	grid   *DirectionGrid
	adj    Adjacency
	rng    *rand.Rand
	start  int
	end    int
	logger *slog.Logger
}

// New creates a width×height builder with every cell undecided.
// Without WithAdjacency the builder carves on a 4-neighbour gridgraph.Lattice.
// Returns gridgraph.ErrEmptyGrid for non-positive dimensions,
// ErrDimensionMismatch for a foreign adjacency of another size, and
// ErrOutOfRange for Start/End outside the grid.
func New(width, height int, opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Adjacency == nil {
		l, err := gridgraph.NewLattice(width, height)
		if err != nil {
			return nil, err
		}
		o.Adjacency = l
	} else if o.Adjacency.Width() != width || o.Adjacency.Height() != height {
		return nil, fmt.Errorf("%w: grid %dx%d, adjacency %dx%d",
			ErrDimensionMismatch, width, height, o.Adjacency.Width(), o.Adjacency.Height())
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	n := width * height
	if o.Start < 0 {
		o.Start = 0
	}
	if o.End < 0 {
		o.End = n - 1
	}
	if o.Start >= n || o.End >= n {
		return nil, fmt.Errorf("%w: start %d / end %d with %d cells", ErrOutOfRange, o.Start, o.End, n)
	}

	return &Builder{
		grid:   NewDirectionGrid(width, height),
		adj:    o.Adjacency,
		rng:    o.Rand,
		start:  o.Start,
		end:    o.End,
		logger: o.Logger,
	}, nil
}

// Width returns the number of columns.
func (b *Builder) Width() int { return b.grid.width }

// Height returns the number of rows.
func (b *Builder) Height() int { return b.grid.height }

// NumberOfNodes returns the number of cells.
func (b *Builder) NumberOfNodes() int { return b.grid.Len() }

// Grid exposes the underlying grid, e.g. to register change observers.
func (b *Builder) Grid() *DirectionGrid { return b.grid }

// Adjacency returns the adjacency the builder carves on.
func (b *Builder) Adjacency() Adjacency { return b.adj }

// Rand returns the builder's random generator. Every algorithm draws from it.
func (b *Builder) Rand() *rand.Rand { return b.rng }

// Logger returns the builder's logger; it discards output unless WithLogger was used.
func (b *Builder) Logger() *slog.Logger { return b.logger }

// Start returns the start cell index.
func (b *Builder) Start() int { return b.start }

// End returns the end cell index.
func (b *Builder) End() int { return b.end }

// SetStart moves the start cell.
func (b *Builder) SetStart(idx int) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: start %d", ErrOutOfRange, idx)
	}
	b.start = idx
	return nil
}

// SetEnd moves the end cell.
func (b *Builder) SetEnd(idx int) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: end %d", ErrOutOfRange, idx)
	}
	b.end = idx
	return nil
}

// InBounds reports whether (col,row) lies within the grid.
func (b *Builder) InBounds(col, row int) bool {
	return col >= 0 && col < b.grid.width && row >= 0 && row < b.grid.height
}

// Contains reports whether idx is a valid cell index.
func (b *Builder) Contains(idx int) bool {
	return idx >= 0 && idx < b.grid.Len()
}

// Index maps (col,row) to row*Width+col.
func (b *Builder) Index(col, row int) int { return row*b.grid.width + col }

// Coordinate maps an index back to (col,row).
func (b *Builder) Coordinate(idx int) (col, row int) {
	return idx % b.grid.width, idx / b.grid.width
}

// Cell returns the state at (col,row).
func (b *Builder) Cell(col, row int) (cell.State, error) {
	if !b.InBounds(col, row) {
		return cell.State{}, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, col, row)
	}
	return b.grid.Get(col, row), nil
}

// CellAt returns the state of cell idx. idx must be in range.
func (b *Builder) CellAt(idx int) cell.State {
	return b.grid.GetIndex(idx)
}

// Neighbors returns the adjacency neighbours of idx.
func (b *Builder) Neighbors(idx int) []int {
	return b.adj.Neighbors(idx)
}

// NeighborToward returns the adjacency neighbour of idx along dir.
func (b *Builder) NeighborToward(idx int, dir cell.Direction) (int, bool) {
	for _, n := range b.adj.Neighbors(idx) {
		if b.adj.DirectionBetween(idx, n) == dir {
			return n, true
		}
	}
	return -1, false
}

// CarvePassage opens the edge between (colA,rowA) and (colB,rowB).
// See CarvePassageIndex.
func (b *Builder) CarvePassage(colA, rowA, colB, rowB int, preserve bool) bool {
	if !b.InBounds(colA, rowA) || !b.InBounds(colB, rowB) {
		return false
	}
	return b.CarvePassageIndex(b.Index(colA, rowA), b.Index(colB, rowB), preserve)
}

// CarvePassageIndex opens the edge between cells a and c, looking up each
// side's direction independently so a one-way adjacency opens one side only.
// With preserve set, both cells must still be undefined or nothing changes.
// Returns false for non-adjacent cells or a preserve-blocked edit.
func (b *Builder) CarvePassageIndex(a, c int, preserve bool) bool {
	if !b.Contains(a) || !b.Contains(c) {
		return false
	}
	dAC := b.adj.DirectionBetween(a, c)
	dCA := b.adj.DirectionBetween(c, a)
	if dAC == cell.None && dCA == cell.None {
		return false
	}
	sa, sc := b.grid.GetIndex(a), b.grid.GetIndex(c)
	if preserve && (!sa.Undefined || !sc.Undefined) {
		return false
	}
	if dAC != cell.None {
		b.grid.SetIndex(a, sa.With(dAC))
	}
	if dCA != cell.None {
		b.grid.SetIndex(c, sc.With(dCA))
	}
	return true
}

// AddWall closes the edge between (colA,rowA) and (colB,rowB).
// See AddWallIndex.
func (b *Builder) AddWall(colA, rowA, colB, rowB int, preserve bool) bool {
	if !b.InBounds(colA, rowA) || !b.InBounds(colB, rowB) {
		return false
	}
	return b.AddWallIndex(b.Index(colA, rowA), b.Index(colB, rowB), preserve)
}

// AddWallIndex clears the directional flag on each side of the a–c edge that
// the adjacency defines. With preserve set, every side to be changed must be
// undefined or nothing changes. Returns false for non-adjacent cells or a
// preserve-blocked edit.
func (b *Builder) AddWallIndex(a, c int, preserve bool) bool {
	if !b.Contains(a) || !b.Contains(c) {
		return false
	}
	dAC := b.adj.DirectionBetween(a, c)
	dCA := b.adj.DirectionBetween(c, a)
	if dAC == cell.None && dCA == cell.None {
		return false
	}
	sa, sc := b.grid.GetIndex(a), b.grid.GetIndex(c)
	if preserve && ((dAC != cell.None && !sa.Undefined) || (dCA != cell.None && !sc.Undefined)) {
		return false
	}
	if dAC != cell.None {
		b.grid.SetIndex(a, sa.Without(dAC))
	}
	if dCA != cell.None {
		b.grid.SetIndex(c, sc.Without(dCA))
	}
	return true
}

// SetCell overwrites (col,row) without any preserve check.
func (b *Builder) SetCell(col, row int, s cell.State) error {
	if !b.InBounds(col, row) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, col, row)
	}
	b.grid.Set(col, row, s)
	return nil
}

// SetCellIndex overwrites cell idx without any preserve check.
func (b *Builder) SetCellIndex(idx int, s cell.State) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, idx)
	}
	b.grid.SetIndex(idx, s)
	return nil
}

// AddDirections ORs d into (col,row) on this side only.
func (b *Builder) AddDirections(col, row int, d cell.Direction) error {
	if !b.InBounds(col, row) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, col, row)
	}
	return b.AddDirectionsIndex(b.Index(col, row), d)
}

// AddDirectionsIndex ORs d into cell idx on this side only.
func (b *Builder) AddDirectionsIndex(idx int, d cell.Direction) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, idx)
	}
	b.grid.SetIndex(idx, b.grid.GetIndex(idx).With(d))
	return nil
}

// RemoveDirections clears d from (col,row) on this side only.
func (b *Builder) RemoveDirections(col, row int, d cell.Direction) error {
	if !b.InBounds(col, row) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, col, row)
	}
	return b.RemoveDirectionsIndex(b.Index(col, row), d)
}

// RemoveDirectionsIndex clears d from cell idx on this side only.
func (b *Builder) RemoveDirectionsIndex(idx int, d cell.Direction) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, idx)
	}
	b.grid.SetIndex(idx, b.grid.GetIndex(idx).Without(d))
	return nil
}

// Maze returns a read-only view of the current grid. It first forces the two
// boundary exits: an outward South opening on cell 0 and an outward East
// opening on the last cell. The view shares the grid with the builder.
func (b *Builder) Maze() *Maze {
	last := b.grid.Len() - 1
	b.grid.SetIndex(0, b.grid.GetIndex(0).With(cell.South))
	b.grid.SetIndex(last, b.grid.GetIndex(last).With(cell.East))
	b.logger.Debug("maze snapshot", "width", b.Width(), "height", b.Height(),
		"start", b.start, "end", b.end)

	return &Maze{
		grid:  b.grid,
		adj:   b.adj,
		start: b.start,
		end:   b.end,
	}
}
