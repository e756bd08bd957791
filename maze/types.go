package maze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/labyrinth/cell"
)

// Sentinel errors for maze operations.
var (
	// ErrOutOfRange indicates a cell or region outside the grid.
	ErrOutOfRange = errors.New("maze: out of range")
	// ErrDimensionMismatch indicates an adjacency sized differently from the grid.
	ErrDimensionMismatch = errors.New("maze: adjacency dimensions do not match grid")
)

// Adjacency is the grid adjacency a Builder carves on. *gridgraph.Lattice
// satisfies it; any provider with the same contract may be injected.
type Adjacency interface {
	Width() int
	Height() int
	NumberOfNodes() int
	Neighbors(idx int) []int
	DirectionBetween(from, to int) cell.Direction
	ContainsEdge(from, to int) bool
}

// Region is an inclusive rectangle of cells spanning the lower-left corner
// (MinCol, MinRow) to the upper-right corner (MaxCol, MaxRow).
type Region struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// NewRegion builds a Region from its lower-left and upper-right corners.
func NewRegion(lowerLeftCol, lowerLeftRow, upperRightCol, upperRightRow int) Region {
	return Region{MinCol: lowerLeftCol, MinRow: lowerLeftRow, MaxCol: upperRightCol, MaxRow: upperRightRow}
}

// Width returns the number of columns in r.
func (r Region) Width() int { return r.MaxCol - r.MinCol + 1 }

// Height returns the number of rows in r.
func (r Region) Height() int { return r.MaxRow - r.MinRow + 1 }

// Contains reports whether (col,row) lies inside r.
func (r Region) Contains(col, row int) bool {
	return col >= r.MinCol && col <= r.MaxCol && row >= r.MinRow && row <= r.MaxRow
}

// String renders r as "[c0,r0..c1,r1]".
func (r Region) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.MinCol, r.MinRow, r.MaxCol, r.MaxRow)
}

// Options configures a Builder.
type Options struct {
	Rand      *rand.Rand
	Start     int // -1 selects cell 0
	End       int // -1 selects the last cell
	Adjacency Adjacency
	Logger    *slog.Logger
}

// Option customizes a Builder at construction time.
type Option func(*Options)

// WithSeed creates a deterministic generator from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithStart designates the start cell index.
func WithStart(idx int) Option {
	return func(o *Options) {
		o.Start = idx
	}
}

// WithEnd designates the end cell index.
func WithEnd(idx int) Option {
	return func(o *Options) {
		o.End = idx
	}
}

// WithAdjacency replaces the default 4-neighbour lattice. Panics on nil.
func WithAdjacency(a Adjacency) Option {
	if a == nil {
		panic("maze: WithAdjacency(nil)")
	}
	return func(o *Options) {
		o.Adjacency = a
	}
}

// WithLogger attaches a logger used at Debug level. nil keeps logging off.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// defaultSeed keeps builders without WithSeed/WithRand reproducible.
const defaultSeed int64 = 1

func defaultOptions() Options {
	return Options{
		Start:  -1,
		End:    -1,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
