package metrics

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Sentinel errors.
var (
	// ErrNilMaze indicates a nil *maze.Maze.
	ErrNilMaze = errors.New("metrics: maze is nil")

	// ErrNoSolution indicates that End is unreachable from Start.
	ErrNoSolution = errors.New("metrics: end unreachable from start")
)

// Unreachable is the distance recorded for cells a traversal never reached.
const Unreachable = gridgraph.Unreachable

// EdgeFlow classifies an open edge relative to the traversal from Start.
type EdgeFlow uint8

const (
	// NoFlow marks a closed edge.
	NoFlow EdgeFlow = iota
	// Entrance is the edge a cell was reached through.
	Entrance
	// PrimaryExit is the main way forward out of a cell.
	PrimaryExit
	// SecondaryExit is a side branch.
	SecondaryExit
	// ThirdExit is a further side branch at a cross junction.
	ThirdExit
)

// String implements fmt.Stringer.
func (f EdgeFlow) String() string {
	switch f {
	case Entrance:
		return "entrance"
	case PrimaryExit:
		return "primary"
	case SecondaryExit:
		return "secondary"
	case ThirdExit:
		return "third"
	}
	return "none"
}

// BranchRoot selects where a branch is considered to start.
type BranchRoot int

const (
	// RootAtSolution attributes every off-path cell to the solution cell its
	// branch leaves from.
	RootAtSolution BranchRoot = iota
	// RootAtJunction attributes a cell to its nearest junction ancestor.
	RootAtJunction
)

// BranchID names a branch by its root cell and the direction the branch
// leaves it in. Solution cells carry their own index and cell.None.
type BranchID struct {
	Root int            `json:"root" yaml:"root"`
	Dir  cell.Direction `json:"dir" yaml:"dir"`
}

// CellMetrics holds everything computed for one cell. Distances are
// Unreachable until computed or when the cell was not reached.
type CellMetrics struct {
	DistanceFromStart      int
	ParentFromStart        int // -1 for Start and unreached cells
	DistanceToEnd          int
	Flow                   [4]EdgeFlow // indexed by cell.Direction.Ordinal
	OnSolution             bool
	PathDistanceToSolution int
	GridDistanceToSolution int
	BranchLevel            int
	Branch                 BranchID
	DeadEndLength          int
}

// FlowToward returns the flow of the edge leaving the cell along d.
func (c CellMetrics) FlowToward(d cell.Direction) EdgeFlow {
	if i := d.Ordinal(); i >= 0 {
		return c.Flow[i]
	}
	return NoFlow
}

// Summary aggregates maze-wide values.
type Summary struct {
	Cells                     int `json:"cells" yaml:"cells"`
	DeadEnds                  int `json:"dead_ends" yaml:"dead_ends"`
	Turns                     int `json:"turns" yaml:"turns"`
	Straights                 int `json:"straights" yaml:"straights"`
	TJunctions                int `json:"t_junctions" yaml:"t_junctions"`
	Crosses                   int `json:"crosses" yaml:"crosses"`
	Solid                     int `json:"solid" yaml:"solid"`
	Undefined                 int `json:"undefined" yaml:"undefined"`
	SolutionLength            int `json:"solution_length" yaml:"solution_length"`
	MaxDistanceFromStart      int `json:"max_distance_from_start" yaml:"max_distance_from_start"`
	MaxDistanceToEnd          int `json:"max_distance_to_end" yaml:"max_distance_to_end"`
	MaxPathDistanceToSolution int `json:"max_path_distance_to_solution" yaml:"max_path_distance_to_solution"`
	MaxBranchLevel            int `json:"max_branch_level" yaml:"max_branch_level"`
	LongestDeadEnd            int `json:"longest_dead_end" yaml:"longest_dead_end"`
}

// Options configures a Metrics engine.
type Options struct {
	Rand       *rand.Rand
	BranchRoot BranchRoot
}

// Option customizes Options.
type Option func(*Options)

// WithRand supplies the generator for random exit assignment, typically the
// Builder's. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("metrics: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a deterministic generator from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithBranchRoot selects the branch root policy.
func WithBranchRoot(p BranchRoot) Option {
	return func(o *Options) {
		o.BranchRoot = p
	}
}
