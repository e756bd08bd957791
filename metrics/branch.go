package metrics

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/cell"
)

// ComputeBranchLevels walks outward from the solution path. Solution cells
// have level 0; any other cell takes its parent's level, plus one when the
// parent's edge toward it is a SecondaryExit or ThirdExit. Levels therefore
// never decrease moving away from the path. Cells the walk does not reach
// keep Unreachable.
//
// Each cell also records its BranchID: under RootAtSolution the solution
// cell and direction its branch leaves from; under RootAtJunction the
// nearest junction ancestor instead.
func (mt *Metrics) ComputeBranchLevels() error {
	if err := mt.require(stepSecondaryOnPath, mt.AddSecondaryExitsOnPath); err != nil {
		return err
	}
	res, err := bfs.Multi(mt.m, mt.solution)
	if err != nil {
		return fmt.Errorf("metrics: traversal from solution: %w", err)
	}

	for i := range mt.cells {
		mt.cells[i].BranchLevel = Unreachable
		mt.cells[i].Branch = BranchID{Root: -1}
	}
	maxLevel := 0
	for _, idx := range res.Order {
		c := &mt.cells[idx]
		p := res.Parent[idx]
		if p == bfs.NoParent {
			c.BranchLevel = 0
			c.Branch = BranchID{Root: idx, Dir: cell.None}
			continue
		}

		parent := mt.cells[p]
		dir := mt.m.DirectionBetween(p, idx)
		c.BranchLevel = parent.BranchLevel
		if f := parent.FlowToward(dir); f == SecondaryExit || f == ThirdExit {
			c.BranchLevel++
		}

		switch {
		case parent.OnSolution:
			c.Branch = BranchID{Root: p, Dir: dir}
		case mt.root == RootAtJunction && cell.IsJunction(mt.openSteps(p)):
			c.Branch = BranchID{Root: p, Dir: dir}
		default:
			c.Branch = parent.Branch
		}
		maxLevel = max(maxLevel, c.BranchLevel)
	}

	mt.summary.MaxBranchLevel = maxLevel
	mt.done |= stepBranches
	return nil
}
