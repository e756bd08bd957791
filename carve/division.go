package carve

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// RecursiveDivision builds a maze by subtraction over Options.Region
// (default: the whole grid).
//
// The region is opened fully (cells stay undefined), its outer border is
// walled, and the current rectangle is split by a wall with one random gap;
// both halves are divided again until a side is shorter than 2. Split axis
// and position come from Options.Split, by default the longer axis at a
// random position (random axis for squares).
//
// Returns maze.ErrOutOfRange if the region leaves the grid.
func RecursiveDivision(b *maze.Builder, opts ...Option) error {
	o, err := resolve(b, opts)
	if err != nil {
		return err
	}
	r := b.FullRegion()
	if o.Region != nil {
		r = *o.Region
	}
	if err = b.OpenRegion(r, true, o.PreserveExisting); err != nil {
		return err
	}

	d := &divider{b: b, rng: b.Rand(), split: o.Split, preserve: o.PreserveExisting}
	d.wallBorder(r)
	d.divide(r)

	b.Logger().Debug("recursive division done", "region", r.String(), "walls", d.walls)
	return nil
}

type divider struct {
	b        *maze.Builder
	rng      *rand.Rand
	split    SplitFunc
	preserve bool
	walls    int
}

// wallBorder closes every direction of r's border cells that leaves r,
// including outward openings on the grid boundary.
func (d *divider) wallBorder(r maze.Region) {
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			if col != r.MinCol && col != r.MaxCol && row != r.MinRow && row != r.MaxRow {
				continue
			}
			idx := d.b.Index(col, row)
			s := d.b.CellAt(idx)
			if d.preserve && !s.Undefined {
				continue
			}
			for _, dir := range cell.Compass {
				dc, dr := dir.Offset()
				if r.Contains(col+dc, row+dr) {
					continue
				}
				_ = d.b.RemoveDirectionsIndex(idx, dir)
			}
		}
	}
}

// divide splits r until either side is shorter than 2.
func (d *divider) divide(r maze.Region) {
	if r.Width() < 2 || r.Height() < 2 {
		return
	}
	horizontal, at := d.choose(r)

	if horizontal {
		gap := r.MinCol + d.rng.Intn(r.Width())
		for col := r.MinCol; col <= r.MaxCol; col++ {
			if col != gap && d.b.AddWall(col, at, col, at+1, d.preserve) {
				d.walls++
			}
		}
		d.divide(maze.NewRegion(r.MinCol, r.MinRow, r.MaxCol, at))
		d.divide(maze.NewRegion(r.MinCol, at+1, r.MaxCol, r.MaxRow))
		return
	}

	gap := r.MinRow + d.rng.Intn(r.Height())
	for row := r.MinRow; row <= r.MaxRow; row++ {
		if row != gap && d.b.AddWall(at, row, at+1, row, d.preserve) {
			d.walls++
		}
	}
	d.divide(maze.NewRegion(r.MinCol, r.MinRow, at, r.MaxRow))
	d.divide(maze.NewRegion(at+1, r.MinRow, r.MaxCol, r.MaxRow))
}

// choose asks the split policy, falling back to the default when the policy
// is unset or answers outside r.
func (d *divider) choose(r maze.Region) (bool, int) {
	if d.split != nil {
		horizontal, at := d.split(r, d.rng)
		if horizontal && at >= r.MinRow && at < r.MaxRow {
			return true, at
		}
		if !horizontal && at >= r.MinCol && at < r.MaxCol {
			return false, at
		}
	}
	return DefaultSplit(r, d.rng)
}

// DefaultSplit splits across the longer side at a random position; squares
// pick the axis at random.
func DefaultSplit(r maze.Region, rng *rand.Rand) (horizontal bool, at int) {
	switch {
	case r.Height() > r.Width():
		horizontal = true
	case r.Width() > r.Height():
		horizontal = false
	default:
		horizontal = rng.Intn(2) == 0
	}
	if horizontal {
		return true, r.MinRow + rng.Intn(r.Height()-1)
	}
	return false, r.MinCol + rng.Intn(r.Width()-1)
}
