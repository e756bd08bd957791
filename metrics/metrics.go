package metrics

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// step flags record which computations have run.
type step uint16

const (
	stepFromStart step = 1 << iota
	stepToEnd
	stepSolution
	stepFlows
	stepSecondaryOnPath
	stepMazeDistance
	stepGridDistance
	stepBranches
	stepDeadEnds
	stepCounts
)

// defaultSeed keeps engines without WithRand/WithSeed reproducible.
const defaultSeed int64 = 1

// Metrics computes and stores per-cell and aggregate values for one Maze.
type Metrics struct {
	m        *maze.Maze
	rng      *rand.Rand
	root     BranchRoot
	cells    []CellMetrics
	fromRes  *bfs.Result
	solution []int
	summary  Summary
	done     step
}

// New creates an engine over m. Nothing is computed yet.
func New(m *maze.Maze, opts ...Option) (*Metrics, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	n := m.NumberOfNodes()
	cells := make([]CellMetrics, n)
	for i := range cells {
		cells[i] = CellMetrics{
			DistanceFromStart:      Unreachable,
			ParentFromStart:        bfs.NoParent,
			DistanceToEnd:          Unreachable,
			PathDistanceToSolution: Unreachable,
			GridDistanceToSolution: Unreachable,
			Branch:                 BranchID{Root: -1},
		}
	}

	return &Metrics{
		m:       m,
		rng:     o.Rand,
		root:    o.BranchRoot,
		cells:   cells,
		summary: Summary{Cells: n},
	}, nil
}

// Maze returns the maze the metrics describe.
func (mt *Metrics) Maze() *maze.Maze { return mt.m }

// Cell returns the metrics of cell idx.
func (mt *Metrics) Cell(idx int) CellMetrics { return mt.cells[idx] }

// Cells returns a copy of every cell's metrics, indexed by cell.
func (mt *Metrics) Cells() []CellMetrics {
	out := make([]CellMetrics, len(mt.cells))
	copy(out, mt.cells)
	return out
}

// SolutionPath returns the Start..End path, or nil before ComputeSolutionPath.
func (mt *Metrics) SolutionPath() []int {
	if mt.solution == nil {
		return nil
	}
	out := make([]int, len(mt.solution))
	copy(out, mt.solution)
	return out
}

// Summary returns the aggregate values computed so far.
func (mt *Metrics) Summary() Summary { return mt.summary }

// ComputeAll runs every computation: distances, solution path, flows with
// secondary exits on the path and random secondary/tertiary assignment,
// distances to the solution, branch levels, dead-end lengths and counts.
// Returns ErrNoSolution when End is unreachable; the values computed before
// the failure remain available.
func (mt *Metrics) ComputeAll() error {
	for _, fn := range []func() error{
		mt.ComputeDistancesFromStart,
		mt.ComputeDistancesToEnd,
		mt.ComputeSolutionPath,
		mt.DirectionsFromStart,
		mt.AddSecondaryExitsOnPath,
		mt.RandomlyAssignSecondaryExits,
		mt.RandomlyAssignTertiaryExits,
		mt.ComputeMazeDistanceFromSolutionPath,
		mt.ComputeGridDistanceFromSolutionPath,
		mt.ComputeBranchLevels,
		mt.ComputeDeadEndLengths,
		mt.ComputeCellCounts,
	} {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// ComputeDistancesFromStart runs a breadth-first traversal from Start through
// open steps, recording distance and parent per cell.
func (mt *Metrics) ComputeDistancesFromStart() error {
	res, err := mt.m.Walk(mt.m.Start())
	if err != nil {
		return fmt.Errorf("metrics: traversal from start: %w", err)
	}
	mt.fromRes = res
	maxDist := 0
	for i := range mt.cells {
		mt.cells[i].ParentFromStart = res.Parent[i]
		if res.Depth[i] == bfs.Unreached {
			mt.cells[i].DistanceFromStart = Unreachable
			continue
		}
		mt.cells[i].DistanceFromStart = res.Depth[i]
		maxDist = max(maxDist, res.Depth[i])
	}
	mt.summary.MaxDistanceFromStart = maxDist
	mt.done |= stepFromStart
	return nil
}

// ComputeDistancesToEnd runs a breadth-first traversal from End.
func (mt *Metrics) ComputeDistancesToEnd() error {
	res, err := mt.m.Walk(mt.m.End())
	if err != nil {
		return fmt.Errorf("metrics: traversal from end: %w", err)
	}
	maxDist := 0
	for i := range mt.cells {
		if res.Depth[i] == bfs.Unreached {
			mt.cells[i].DistanceToEnd = Unreachable
			continue
		}
		mt.cells[i].DistanceToEnd = res.Depth[i]
		maxDist = max(maxDist, res.Depth[i])
	}
	mt.summary.MaxDistanceToEnd = maxDist
	mt.done |= stepToEnd
	return nil
}

// ComputeSolutionPath stores one shortest Start..End path (in cells).
// Returns ErrNoSolution when End was not reached.
func (mt *Metrics) ComputeSolutionPath() error {
	if err := mt.require(stepFromStart, mt.ComputeDistancesFromStart); err != nil {
		return err
	}
	path, err := mt.fromRes.PathTo(mt.m.End())
	if err != nil {
		if errors.Is(err, bfs.ErrNoPath) {
			return fmt.Errorf("%w: start %d, end %d", ErrNoSolution, mt.m.Start(), mt.m.End())
		}
		return err
	}
	for i := range mt.cells {
		mt.cells[i].OnSolution = false
	}
	for _, idx := range path {
		mt.cells[idx].OnSolution = true
	}
	mt.solution = path
	mt.summary.SolutionLength = len(path)
	mt.done |= stepSolution
	return nil
}

// ComputeMazeDistanceFromSolutionPath records, per cell, the number of open
// steps to the nearest solution cell.
func (mt *Metrics) ComputeMazeDistanceFromSolutionPath() error {
	if err := mt.require(stepSolution, mt.ComputeSolutionPath); err != nil {
		return err
	}
	res, err := bfs.Multi(mt.m, mt.solution)
	if err != nil {
		return fmt.Errorf("metrics: traversal from solution: %w", err)
	}
	maxDist := 0
	for i := range mt.cells {
		if res.Depth[i] == bfs.Unreached {
			mt.cells[i].PathDistanceToSolution = Unreachable
			continue
		}
		mt.cells[i].PathDistanceToSolution = res.Depth[i]
		maxDist = max(maxDist, res.Depth[i])
	}
	mt.summary.MaxPathDistanceToSolution = maxDist
	mt.done |= stepMazeDistance
	return nil
}

// ComputeGridDistanceFromSolutionPath records, per cell, the lattice distance
// to the nearest solution cell, ignoring walls. It is a lower bound of the
// maze distance.
func (mt *Metrics) ComputeGridDistanceFromSolutionPath() error {
	if err := mt.require(stepSolution, mt.ComputeSolutionPath); err != nil {
		return err
	}
	res, err := bfs.Multi(mt.m.Adjacency(), mt.solution)
	if err != nil {
		return fmt.Errorf("metrics: lattice traversal from solution: %w", err)
	}
	for i := range mt.cells {
		if res.Depth[i] == bfs.Unreached {
			mt.cells[i].GridDistanceToSolution = Unreachable
			continue
		}
		mt.cells[i].GridDistanceToSolution = res.Depth[i]
	}
	mt.done |= stepGridDistance
	return nil
}

// require runs fn unless s has already been computed.
func (mt *Metrics) require(s step, fn func() error) error {
	if mt.done&s != 0 {
		return nil
	}
	return fn()
}

// openSteps returns the open directions of idx that lead to a neighbour.
func (mt *Metrics) openSteps(idx int) cell.Direction {
	steps := cell.None
	for _, n := range mt.m.Neighbors(idx) {
		steps |= mt.m.DirectionBetween(idx, n)
	}
	return steps
}
