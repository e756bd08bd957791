package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/cell"
)

// FullRegion returns the region covering the whole grid.
func (b *Builder) FullRegion() Region {
	return Region{MaxCol: b.Width() - 1, MaxRow: b.Height() - 1}
}

// checkRegion rejects inverted regions and any corner outside the grid.
func (b *Builder) checkRegion(r Region) error {
	if r.MinCol > r.MaxCol || r.MinRow > r.MaxRow ||
		!b.InBounds(r.MinCol, r.MinRow) || !b.InBounds(r.MaxCol, r.MaxRow) {
		return fmt.Errorf("%w: region %s on %dx%d grid", ErrOutOfRange, r, b.Width(), b.Height())
	}
	return nil
}

// FillRegion writes s into every cell of r. With preserve set, cells whose
// Undefined marker is already clear are skipped.
// Returns ErrOutOfRange if r leaves the grid.
func (b *Builder) FillRegion(r Region, s cell.State, preserve bool) error {
	if err := b.checkRegion(r); err != nil {
		return err
	}
	written := 0
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			if preserve && !b.grid.Get(col, row).Undefined {
				continue
			}
			b.grid.Set(col, row, s)
			written++
		}
	}
	b.logger.Debug("region filled", "region", r.String(), "state", s.String(), "cells", written)
	return nil
}

// BlockRegion makes every cell of r solid.
func (b *Builder) BlockRegion(r Region, preserve bool) error {
	return b.FillRegion(r, cell.Decided(cell.None), preserve)
}

// OpenRegion opens all four directions of every cell of r, optionally keeping
// the cells marked undefined so later preserve-respecting edits may still
// change them.
func (b *Builder) OpenRegion(r Region, markUndefined, preserve bool) error {
	return b.FillRegion(r, cell.State{Open: cell.All, Undefined: markUndefined}, preserve)
}

// Clear resets every cell to undecided with no open edge.
func (b *Builder) Clear() {
	for i := 0; i < b.grid.Len(); i++ {
		b.grid.SetIndex(i, cell.Undecided())
	}
}

// Freeze clears the Undefined marker of (col,row).
func (b *Builder) Freeze(col, row int) error {
	if !b.InBounds(col, row) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, col, row)
	}
	return b.FreezeIndex(b.Index(col, row))
}

// FreezeIndex clears the Undefined marker of cell idx.
func (b *Builder) FreezeIndex(idx int) error {
	if !b.Contains(idx) {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, idx)
	}
	b.grid.SetIndex(idx, b.grid.GetIndex(idx).Frozen())
	return nil
}

// FreezeDefinedCells freezes every cell with at least one open direction and
// leaves untouched cells undefined. Returns the number of cells frozen.
func (b *Builder) FreezeDefinedCells() int {
	n := 0
	for i := 0; i < b.grid.Len(); i++ {
		s := b.grid.GetIndex(i)
		if s.Undefined && s.Open != cell.None {
			b.grid.SetIndex(i, s.Frozen())
			n++
		}
	}
	return n
}

// MakeBidirectionallyConsistent repairs one-sided edges of the cells in r.
// For every open direction whose neighbour lacks the mirrored flag, it either
// opens the mirror (carveMissing) or closes the original side. Outward
// boundary openings have no neighbour and are left alone.
// Returns the number of repairs; a second call on the same region returns 0.
func (b *Builder) MakeBidirectionallyConsistent(r Region, carveMissing bool) (int, error) {
	if err := b.checkRegion(r); err != nil {
		return 0, err
	}
	fixes := 0
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			idx := b.Index(col, row)
			for _, d := range b.grid.GetIndex(idx).Open.Split() {
				n, ok := b.NeighborToward(idx, d)
				if !ok {
					continue
				}
				mirror := b.adj.DirectionBetween(n, idx)
				if mirror == cell.None {
					continue
				}
				ns := b.grid.GetIndex(n)
				if ns.Open.Has(mirror) {
					continue
				}
				if carveMissing {
					b.grid.SetIndex(n, ns.With(mirror))
				} else {
					b.grid.SetIndex(idx, b.grid.GetIndex(idx).Without(d))
				}
				fixes++
			}
		}
	}
	if fixes > 0 {
		b.logger.Debug("consistency repaired", "region", r.String(), "carve", carveMissing, "fixes", fixes)
	}
	return fixes, nil
}
