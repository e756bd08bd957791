package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/metrics"
)

// Validate checks r without generating anything.
func (r Request) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidRequest, r.Width, r.Height)
	case r.FavorHorizontal < 0 || r.FavorHorizontal > 1:
		return fmt.Errorf("%w: favor_horizontal %v outside [0,1]", ErrInvalidRequest, r.FavorHorizontal)
	case r.MaxSteps < 0:
		return fmt.Errorf("%w: max_steps %d", ErrInvalidRequest, r.MaxSteps)
	case r.BraidCount < -1:
		return fmt.Errorf("%w: braid_count %d", ErrInvalidRequest, r.BraidCount)
	case r.TrimPasses < -1:
		return fmt.Errorf("%w: trim_passes %d", ErrInvalidRequest, r.TrimPasses)
	}
	if _, err := branchRoot(r.BranchRoot); err != nil {
		return err
	}
	_, err := Lookup(r.Algorithm)
	return err
}

// branchRoot maps a policy name to metrics.BranchRoot; empty selects the
// solution policy.
func branchRoot(name string) (metrics.BranchRoot, error) {
	switch name {
	case "", RootSolution:
		return metrics.RootAtSolution, nil
	case RootJunction:
		return metrics.RootAtJunction, nil
	}
	return 0, fmt.Errorf("%w: branch_root %q", ErrInvalidRequest, name)
}

// Generate runs the pipeline for req. The algorithm runs on a fresh builder
// seeded with req.Seed; its cells are then frozen and the braid and trim
// passes edit them explicitly. ctx is checked between stages.
//
// Returns ErrInvalidRequest or ErrUnknownAlgorithm for bad input,
// carve.ErrIncomplete when a step ceiling stopped a random walk, and
// metrics.ErrNoSolution if the passes left End unreachable.
func Generate(ctx context.Context, req Request, opts ...Option) (*Report, error) {
	o := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	root, _ := branchRoot(req.BranchRoot)
	run, _ := Lookup(req.Algorithm)

	began := time.Now()
	id := uuid.New().String()
	log := o.Logger.With("id", id, "algorithm", req.Algorithm)

	b, err := maze.New(req.Width, req.Height, maze.WithSeed(req.Seed), maze.WithLogger(log))
	if err != nil {
		return nil, err
	}
	carveOpts := []carve.Option{
		carve.WithFavorHorizontal(req.FavorHorizontal),
		carve.WithMaxSteps(req.MaxSteps),
	}
	if err = run(b, carveOpts...); err != nil {
		return nil, fmt.Errorf("generator: %s: %w", req.Algorithm, err)
	}
	b.FreezeDefinedCells()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{ID: id, Request: req}
	passOpts := []carve.Option{carve.WithPreserveExisting(false), carve.WithCarving(req.BraidCarving)}
	switch {
	case req.BraidCount < 0:
		rep.Braided, err = carve.Braid(b, passOpts...)
	case req.BraidCount > 0:
		rep.Braided, err = carve.BraidRandom(b, req.BraidCount, passOpts...)
	}
	if err != nil {
		return nil, err
	}
	if req.TrimPasses != 0 {
		if rep.Trimmed, err = carve.TrimDeadEnds(b, max(req.TrimPasses, 0), passOpts...); err != nil {
			return nil, err
		}
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	m := b.Maze()
	mt, err := metrics.New(m, metrics.WithRand(b.Rand()), metrics.WithBranchRoot(root))
	if err != nil {
		return nil, err
	}
	if err = mt.ComputeAll(); err != nil {
		return nil, err
	}

	rep.Edges = m.NumberOfEdges()
	rep.Perfect = m.IsPerfect()
	rep.Consistent = m.IsConsistent()
	rep.Solution = mt.SolutionPath()
	rep.Summary = mt.Summary()
	rep.Rows = m.Rows()

	log.Info("maze generated",
		"width", req.Width, "height", req.Height, "edges", rep.Edges,
		"dead_ends", rep.Summary.DeadEnds, "elapsed", time.Since(began))
	return rep, nil
}

// Encode writes rep to w as "json" (indented) or "yaml".
func Encode(w io.Writer, rep *Report, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
