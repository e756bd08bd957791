package carve

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for carving algorithms.
var (
	// ErrNilBuilder indicates a nil *maze.Builder.
	ErrNilBuilder = errors.New("carve: builder is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("carve: option violation")

	// ErrIncomplete indicates a random walk that hit its step ceiling before
	// every cell joined the maze.
	ErrIncomplete = errors.New("carve: generation incomplete")

	// ErrNoPath indicates that no route exists between the requested cells.
	ErrNoPath = errors.New("carve: no path")
)

// SplitFunc chooses how RecursiveDivision splits r. For a horizontal split the
// wall runs between rows at and at+1; for a vertical one between columns at
// and at+1. A result outside r falls back to the default policy.
type SplitFunc func(r maze.Region, rng *rand.Rand) (horizontal bool, at int)

// CostFunc prices the step from -> to taken along dir, given the current
// states of both endpoints. Costs must be non-negative.
type CostFunc func(from, to int, dir cell.Direction, fromState, toState cell.State) int64

// ScoreFunc scores the wall between cells a and c for MergeWalls.
type ScoreFunc func(a, c int) float64

// StopFunc is consulted by MergeWalls before each carve; returning true ends
// the pass. carved is the number of walls removed so far.
type StopFunc func(carved, a, c int, score float64) bool

// Options configures the carving algorithms. Each algorithm reads only the
// fields relevant to it.
type Options struct {
	// Start is the first cell of walk-based algorithms; -1 picks a default
	// (the Builder's Start for RecursiveBacktracking, a random cell otherwise).
	Start int

	// PreserveExisting routes every carve and wall through the Builder's
	// preserve policy. Default true.
	PreserveExisting bool

	// MaxSteps caps the random walks of AldousBroder and Wilson.
	// 0 means unbounded.
	MaxSteps int

	// FavorHorizontal is the probability BinaryTree carves East when both
	// East and North are possible. Default 0.5.
	FavorHorizontal float64

	// Region limits RecursiveDivision; nil covers the whole grid.
	Region *maze.Region

	// Split chooses division walls; nil splits along the longer axis.
	Split SplitFunc

	// Cost prices steps for ShortestPath; nil means unit or random costs.
	Cost CostFunc

	// RandomCostMax > 0 draws a random cost in [1, RandomCostMax] per edge
	// when Cost is nil.
	RandomCostMax int64

	// MaxCost limits how far ShortestPath carving propagates; 0 means no limit.
	MaxCost int64

	// Carving selects between carving dead ends open (true) and marking a
	// one-sided edge (false) in Braid and BraidRandom. Default true.
	Carving bool

	// Threshold, Ascending and Stop drive MergeWalls. Without WithThreshold
	// every wall is a candidate.
	Threshold float64
	Ascending bool
	Stop      StopFunc

	thresholdSet bool
	err          error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Start:            -1,
		PreserveExisting: true,
		FavorHorizontal:  0.5,
		Carving:          true,
	}
}

// WithStartCell sets the first cell of walk-based algorithms.
// A negative index records ErrOptionViolation.
func WithStartCell(idx int) Option {
	return func(o *Options) {
		if idx < 0 {
			o.err = fmt.Errorf("%w: start cell cannot be negative (%d)", ErrOptionViolation, idx)
			return
		}
		o.Start = idx
	}
}

// WithPreserveExisting toggles the Builder's preserve policy for every edit.
func WithPreserveExisting(preserve bool) Option {
	return func(o *Options) {
		o.PreserveExisting = preserve
	}
}

// WithMaxSteps caps random walks. n == 0 keeps them unbounded; n < 0 records
// ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithFavorHorizontal sets BinaryTree's East bias in [0,1].
func WithFavorHorizontal(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: FavorHorizontal must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.FavorHorizontal = p
	}
}

// WithRegion limits RecursiveDivision to r.
func WithRegion(r maze.Region) Option {
	return func(o *Options) {
		o.Region = &r
	}
}

// WithSplitPolicy replaces the division split policy. nil keeps the default.
func WithSplitPolicy(fn SplitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Split = fn
		}
	}
}

// WithCostFunc sets the ShortestPath step cost. nil keeps the default.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithRandomCosts gives every edge a random cost in [1, max], drawn once per
// edge from the Builder's generator. max < 1 records ErrOptionViolation.
func WithRandomCosts(max int64) Option {
	return func(o *Options) {
		if max < 1 {
			o.err = fmt.Errorf("%w: random cost max must be positive (%d)", ErrOptionViolation, max)
			return
		}
		o.RandomCostMax = max
	}
}

// WithMaxCost stops ShortestPath carving beyond the given path cost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithCarving selects carving (true) or one-sided marking (false) for braids.
func WithCarving(carving bool) Option {
	return func(o *Options) {
		o.Carving = carving
	}
}

// WithThreshold keeps only walls scoring at or beyond t (>= t, or <= t when
// ascending).
func WithThreshold(t float64) Option {
	return func(o *Options) {
		o.Threshold = t
		o.thresholdSet = true
	}
}

// WithAscending orders MergeWalls from the lowest score up.
func WithAscending() Option {
	return func(o *Options) {
		o.Ascending = true
	}
}

// WithStop installs the MergeWalls stop predicate.
func WithStop(fn StopFunc) Option {
	return func(o *Options) {
		o.Stop = fn
	}
}

// resolve applies opts and validates them against b.
func resolve(b *maze.Builder, opts []Option) (Options, error) {
	o := DefaultOptions()
	if b == nil {
		return o, ErrNilBuilder
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Start >= b.NumberOfNodes() {
		return o, fmt.Errorf("%w: start cell %d", maze.ErrOutOfRange, o.Start)
	}
	return o, nil
}
