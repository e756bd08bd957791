package carve

import (
	"sort"

	"github.com/katalvlaran/labyrinth/maze"
)

// MergeWalls removes walls in score order. Every adjacent pair closed on both
// sides is scored with score; with WithThreshold only walls scoring >= the
// threshold (<= with WithAscending) are kept. Walls are carved from the
// highest score down (lowest up with WithAscending), ties in index order,
// until the list is exhausted or the StopFunc returns true.
// Returns the number of walls removed.
func MergeWalls(b *maze.Builder, score ScoreFunc, opts ...Option) (int, error) {
	o, err := resolve(b, opts)
	if err != nil {
		return 0, err
	}
	if score == nil {
		return 0, ErrOptionViolation
	}

	type wall struct {
		a, c  int
		score float64
	}
	adj := b.Adjacency()
	var walls []wall
	for a := 0; a < b.NumberOfNodes(); a++ {
		for _, c := range b.Neighbors(a) {
			if c <= a {
				continue
			}
			if b.CellAt(a).Open.Has(adj.DirectionBetween(a, c)) ||
				b.CellAt(c).Open.Has(adj.DirectionBetween(c, a)) {
				continue
			}
			s := score(a, c)
			if o.thresholdSet {
				if (o.Ascending && s > o.Threshold) || (!o.Ascending && s < o.Threshold) {
					continue
				}
			}
			walls = append(walls, wall{a: a, c: c, score: s})
		}
	}

	sort.SliceStable(walls, func(i, j int) bool {
		if o.Ascending {
			return walls[i].score < walls[j].score
		}
		return walls[i].score > walls[j].score
	})

	carved := 0
	for _, w := range walls {
		if o.Stop != nil && o.Stop(carved, w.a, w.c, w.score) {
			break
		}
		if b.CarvePassageIndex(w.a, w.c, o.PreserveExisting) {
			carved++
		}
	}

	b.Logger().Debug("merge walls done", "candidates", len(walls), "carved", carved)
	return carved, nil
}
