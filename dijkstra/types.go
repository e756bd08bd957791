// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index graphs with edge costs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of a graph whose step costs are non-negative.
// Costs come from a CostFunc evaluated per step, so the same lattice can be
// searched with constant, state-dependent or randomized costs.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = nodes, E = steps
//	– Space: O(V + E)
//
// Options:
//
//	– Source:           index of the starting node (must be set and in range).
//	– WithCost:         per-step cost; default 1 for every step.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: steps with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source was provided.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source index is outside the graph.
//	– ErrNegativeWeight  if a negative step cost is produced.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(lattice, dijkstra.Source(0), dijkstra.WithCost(cost))
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source node was provided.
	ErrEmptySource = errors.New("dijkstra: source node is not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that the cost function produced a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all steps (including zero-cost steps) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of nodes the search never reached.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks prev entries of the source and unreached nodes.
const NoPredecessor = -1

// Graph is the read-only adjacency Dijkstra walks.
type Graph interface {
	NumberOfNodes() int
	Neighbors(idx int) []int
}

// CostFunc returns the non-negative cost of stepping from -> to.
type CostFunc func(from, to int) int64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int      // The index of the source node
	Cost             CostFunc // Per-step cost
	MaxDistance      int64    // Maximum distance to explore
	InfEdgeThreshold int64    // Cost threshold at or above which steps are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node index.
func Source(idx int) Option {
	return func(o *Options) {
		o.Source = idx
	}
}

// WithCost sets the per-step cost function. nil keeps unit costs.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which steps are
// considered non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:           -1 (unset; Dijkstra returns ErrEmptySource).
//   - Cost:             1 for every step.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no steps treated as impassable).
func DefaultOptions() Options {
	return Options{
		Source:           -1,
		Cost:             func(int, int) int64 { return 1 },
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
