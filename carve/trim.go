package carve

import (
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// TrimDeadEnds turns dead-end cells solid, one layer per pass, for at most
// passes passes (passes <= 0 repeats until no dead end is left). The
// Builder's Start and End are never trimmed. Returns the number of cells
// trimmed.
//
// On a perfect maze an unlimited trim leaves exactly the Start-End corridor.
func TrimDeadEnds(b *maze.Builder, passes int, opts ...Option) (int, error) {
	o, err := resolve(b, opts)
	if err != nil {
		return 0, err
	}
	trimmed := 0
	for pass := 0; passes <= 0 || pass < passes; pass++ {
		var layer []int
		for _, idx := range DeadEnds(b) {
			if idx != b.Start() && idx != b.End() {
				layer = append(layer, idx)
			}
		}
		n := 0
		for _, idx := range layer {
			if !isDeadEnd(b, idx) {
				continue
			}
			d := openSteps(b, idx)
			next, _ := b.NeighborToward(idx, d)
			if !b.AddWallIndex(idx, next, o.PreserveExisting) {
				continue
			}
			_ = b.SetCellIndex(idx, cell.Decided(cell.None))
			n++
		}
		trimmed += n
		if n == 0 {
			break
		}
	}
	b.Logger().Debug("trim done", "passes", passes, "trimmed", trimmed)
	return trimmed, nil
}
