package carve

import (
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// BinaryTree carves East or North from every cell in index order.
//
// Where both are possible a weighted coin (FavorHorizontal) picks East; the
// top row can only go East and the right column only North, so the north-east
// corner is the tree's root. If the chosen carve is rejected the other
// direction is tried. One pass, no backtracking.
func BinaryTree(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	rng := b.Rand()
	carved := 0

	for idx := 0; idx < b.NumberOfNodes(); idx++ {
		east, hasEast := b.NeighborToward(idx, cell.East)
		north, hasNorth := b.NeighborToward(idx, cell.North)

		var first, second int
		switch {
		case hasEast && hasNorth:
			if rng.Float64() < o.FavorHorizontal {
				first, second = east, north
			} else {
				first, second = north, east
			}
		case hasEast:
			first, second = east, -1
		case hasNorth:
			first, second = north, -1
		default:
			continue
		}

		if b.CarvePassageIndex(idx, first, o.PreserveExisting) ||
			(second >= 0 && b.CarvePassageIndex(idx, second, o.PreserveExisting)) {
			carved++
		}
	}

	b.Logger().Debug("binary tree done", "bias", o.FavorHorizontal, "carved", carved)
	return nil
}
