// Package gridgraph defines core types, options, and sentinel errors
// for the lattice adjacency provider.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/cell"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a lattice with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: width and height must be positive")
	// ErrOutOfRange indicates an index outside [0, Width*Height).
	ErrOutOfRange = errors.New("gridgraph: index out of range")
)

// NodeLabelFunc maps a cell coordinate to a node label.
type NodeLabelFunc func(col, row int) string

// EdgeLabelFunc maps a cell coordinate and an outgoing direction to an edge label.
type EdgeLabelFunc func(col, row int, dir cell.Direction) string

// Options holds the label accessors used to decorate a Lattice.
type Options struct {
	// NodeLabel names nodes; defaults to "col,row".
	NodeLabel NodeLabelFunc
	// EdgeLabel names edges; defaults to "col,row:DIR".
	EdgeLabel EdgeLabelFunc
}

// Option configures a Lattice at construction time.
type Option func(*Options)

// DefaultOptions returns the default "col,row" label scheme.
func DefaultOptions() Options {
	return Options{
		NodeLabel: func(col, row int) string { return fmt.Sprintf("%d,%d", col, row) },
		EdgeLabel: func(col, row int, dir cell.Direction) string {
			return fmt.Sprintf("%d,%d:%s", col, row, dir)
		},
	}
}

// WithNodeLabel overrides the node label accessor. nil keeps the default.
func WithNodeLabel(fn NodeLabelFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.NodeLabel = fn
		}
	}
}

// WithEdgeLabel overrides the edge label accessor. nil keeps the default.
func WithEdgeLabel(fn EdgeLabelFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeLabel = fn
		}
	}
}

// Edge is one lattice edge, oriented From -> To along Dir.
type Edge struct {
	From, To int
	Dir      cell.Direction
}

// Lattice is a W×H 4-neighbour grid graph. It is immutable once built and
// safe to share between builders and mazes.
type Lattice struct {
	width, height int
	nodeLabel     NodeLabelFunc
	edgeLabel     EdgeLabelFunc
}
