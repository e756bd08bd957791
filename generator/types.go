package generator

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/labyrinth/metrics"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an algorithm name missing from the registry.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	// ErrInvalidRequest indicates a request failing validation.
	ErrInvalidRequest = errors.New("generator: invalid request")

	// ErrUnknownFormat indicates an unsupported report encoding.
	ErrUnknownFormat = errors.New("generator: unknown format")
)

// Branch root policy names accepted in Request.BranchRoot.
const (
	RootSolution = "solution"
	RootJunction = "junction"
)

// Request describes one maze to generate.
type Request struct {
	Width           int     `json:"width" yaml:"width"`
	Height          int     `json:"height" yaml:"height"`
	Algorithm       string  `json:"algorithm" yaml:"algorithm"`
	Seed            int64   `json:"seed" yaml:"seed"`
	FavorHorizontal float64 `json:"favor_horizontal" yaml:"favor_horizontal"`
	MaxSteps        int     `json:"max_steps,omitempty" yaml:"max_steps,omitempty"`
	// BraidCount merges that many random dead ends; -1 sweeps all of them.
	BraidCount   int  `json:"braid_count,omitempty" yaml:"braid_count,omitempty"`
	BraidCarving bool `json:"braid_carving" yaml:"braid_carving"`
	// TrimPasses trims dead ends that many times; -1 trims until none is left.
	TrimPasses int    `json:"trim_passes,omitempty" yaml:"trim_passes,omitempty"`
	BranchRoot string `json:"branch_root" yaml:"branch_root"`
}

// DefaultRequest returns a 10×10 backtracking request.
func DefaultRequest() Request {
	return Request{
		Width:           10,
		Height:          10,
		Algorithm:       Backtracking,
		Seed:            1,
		FavorHorizontal: 0.5,
		BraidCarving:    true,
		BranchRoot:      RootSolution,
	}
}

// Report is the outcome of Generate.
type Report struct {
	ID         string          `json:"id" yaml:"id"`
	Request    Request         `json:"request" yaml:"request"`
	Edges      int             `json:"edges" yaml:"edges"`
	Perfect    bool            `json:"perfect" yaml:"perfect"`
	Consistent bool            `json:"consistent" yaml:"consistent"`
	Braided    int             `json:"braided" yaml:"braided"`
	Trimmed    int             `json:"trimmed" yaml:"trimmed"`
	Solution   []int           `json:"solution" yaml:"solution"`
	Summary    metrics.Summary `json:"summary" yaml:"summary"`
	Rows       []string        `json:"rows" yaml:"rows"`
}

// Options configures Generate.
type Options struct {
	Logger *slog.Logger
}

// Option customizes Options.
type Option func(*Options)

// WithLogger routes pipeline logging to l. nil keeps logging off.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
