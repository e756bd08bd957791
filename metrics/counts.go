package metrics

import (
	"github.com/katalvlaran/labyrinth/cell"
)

// ComputeDeadEndLengths measures, for every dead end off the solution path,
// the corridor from it to the first junction or solution cell, counting the
// dead end itself. Other cells get 0.
func (mt *Metrics) ComputeDeadEndLengths() error {
	if err := mt.require(stepSolution, mt.ComputeSolutionPath); err != nil {
		return err
	}
	longest := 0
	for idx := range mt.cells {
		mt.cells[idx].DeadEndLength = 0
		if mt.cells[idx].OnSolution || len(mt.m.Neighbors(idx)) != 1 {
			continue
		}
		length := mt.corridorLength(idx)
		mt.cells[idx].DeadEndLength = length
		longest = max(longest, length)
	}
	mt.summary.LongestDeadEnd = longest
	mt.done |= stepDeadEnds
	return nil
}

// corridorLength follows the single corridor out of dead end from.
func (mt *Metrics) corridorLength(from int) int {
	prev, curr := -1, from
	length := 0
	for steps := 0; steps < len(mt.cells); steps++ {
		if mt.cells[curr].OnSolution {
			break
		}
		nbrs := mt.m.Neighbors(curr)
		if curr != from && len(nbrs) != 2 {
			break
		}
		length++
		next := -1
		for _, n := range nbrs {
			if n != prev {
				next = n
				break
			}
		}
		if next < 0 {
			break
		}
		prev, curr = curr, next
	}
	return length
}

// ComputeCellCounts classifies every cell by its open steps (outward
// boundary openings excluded). Undecided cells without an open step count as
// Undefined rather than Solid.
func (mt *Metrics) ComputeCellCounts() error {
	s := &mt.summary
	s.DeadEnds, s.Turns, s.Straights, s.TJunctions, s.Crosses, s.Solid, s.Undefined = 0, 0, 0, 0, 0, 0, 0
	for idx := range mt.cells {
		steps := mt.openSteps(idx)
		if steps == cell.None && mt.m.State(idx).Undefined {
			s.Undefined++
			continue
		}
		switch cell.Classify(steps) {
		case cell.DeadEnd:
			s.DeadEnds++
		case cell.Turn:
			s.Turns++
		case cell.Straight:
			s.Straights++
		case cell.TJunction:
			s.TJunctions++
		case cell.Cross:
			s.Crosses++
		default:
			s.Solid++
		}
	}
	mt.done |= stepCounts
	return nil
}
