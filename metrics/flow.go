package metrics

import (
	"github.com/katalvlaran/labyrinth/cell"
)

// DirectionsFromStart classifies every open edge of every cell reached from
// Start: the edge toward the BFS parent is the Entrance and every other open
// edge a PrimaryExit. An outward boundary opening counts as the Entrance of
// Start and as a PrimaryExit elsewhere. Closed edges and unreached cells
// carry NoFlow.
func (mt *Metrics) DirectionsFromStart() error {
	if err := mt.require(stepFromStart, mt.ComputeDistancesFromStart); err != nil {
		return err
	}
	start := mt.m.Start()
	for idx := range mt.cells {
		c := &mt.cells[idx]
		c.Flow = [4]EdgeFlow{}
		if c.DistanceFromStart == Unreachable {
			continue
		}
		for _, d := range mt.m.Directions(idx).Split() {
			n, ok := mt.m.NeighborToward(idx, d)
			switch {
			case !ok && idx == start:
				c.Flow[d.Ordinal()] = Entrance
			case ok && n == c.ParentFromStart:
				c.Flow[d.Ordinal()] = Entrance
			default:
				c.Flow[d.Ordinal()] = PrimaryExit
			}
		}
	}
	// a later reclassification starts from fresh flows
	mt.done |= stepFlows
	mt.done &^= stepSecondaryOnPath
	return nil
}

// AddSecondaryExitsOnPath downgrades, on every solution cell, the
// PrimaryExit edges that do not continue the path to SecondaryExit. The
// continuation of End is its outward opening.
func (mt *Metrics) AddSecondaryExitsOnPath() error {
	if err := mt.require(stepSolution, mt.ComputeSolutionPath); err != nil {
		return err
	}
	if err := mt.require(stepFlows, mt.DirectionsFromStart); err != nil {
		return err
	}
	for i, idx := range mt.solution {
		var forward cell.Direction
		if i+1 < len(mt.solution) {
			forward = mt.m.DirectionBetween(idx, mt.solution[i+1])
		} else {
			forward = mt.outward(idx)
		}
		c := &mt.cells[idx]
		for o, f := range c.Flow {
			if f == PrimaryExit && !forward.Has(cell.Compass[o]) {
				c.Flow[o] = SecondaryExit
			}
		}
	}
	mt.done |= stepSecondaryOnPath
	return nil
}

// RandomlyAssignSecondaryExits keeps one random PrimaryExit at every cell
// that has several and downgrades the rest to SecondaryExit.
func (mt *Metrics) RandomlyAssignSecondaryExits() error {
	if err := mt.require(stepFlows, mt.DirectionsFromStart); err != nil {
		return err
	}
	mt.thin(PrimaryExit, SecondaryExit)
	return nil
}

// RandomlyAssignTertiaryExits keeps one random SecondaryExit at every cell
// that has several and downgrades the rest to ThirdExit.
func (mt *Metrics) RandomlyAssignTertiaryExits() error {
	if err := mt.require(stepFlows, mt.DirectionsFromStart); err != nil {
		return err
	}
	mt.thin(SecondaryExit, ThirdExit)
	return nil
}

// thin leaves at most one keep edge per cell, demoting the others.
func (mt *Metrics) thin(keep, demote EdgeFlow) {
	for idx := range mt.cells {
		c := &mt.cells[idx]
		var slots []int
		for o, f := range c.Flow {
			if f == keep {
				slots = append(slots, o)
			}
		}
		if len(slots) < 2 {
			continue
		}
		kept := slots[mt.rng.Intn(len(slots))]
		for _, o := range slots {
			if o != kept {
				c.Flow[o] = demote
			}
		}
	}
}

// outward returns the open directions of idx that leave the grid.
func (mt *Metrics) outward(idx int) cell.Direction {
	out := cell.None
	for _, d := range mt.m.Directions(idx).Split() {
		if _, ok := mt.m.NeighborToward(idx, d); !ok {
			out |= d
		}
	}
	return out
}
