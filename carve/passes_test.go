package carve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/maze"
)

// perfect returns a backtracked w×h maze builder.
func perfect(t *testing.T, w, h int, seed int64) *maze.Builder {
	t.Helper()
	b := newBuilder(t, w, h, seed)
	require.NoError(t, carve.RecursiveBacktracking(b))
	return b
}

func TestShortestPath_MaxCost(t *testing.T) {
	b := newBuilder(t, 5, 5, 1)
	require.NoError(t, carve.ShortestPath(b, 0, carve.WithMaxCost(2)))
	// cells within two steps of the corner: 0, 1, 5, 2, 6, 10
	m := b.Maze()
	assert.Equal(t, 5, m.NumberOfEdges())
	res, err := m.Walk(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 5, 2, 6, 10}, res.Order)
}

func TestShortestPathBetween_CostFunc(t *testing.T) {
	vertical := func(_, _ int, dir cell.Direction, _, _ cell.State) int64 {
		if dir == cell.North || dir == cell.South {
			return 100
		}
		return 1
	}
	b := newBuilder(t, 5, 5, 1)
	path, err := carve.ShortestPathBetween(b, 0, 24, carve.WithCostFunc(vertical))
	require.NoError(t, err)
	require.Len(t, path, 9)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 24, path[8])
	assert.Equal(t, int64(404), carve.PathCost(b, path, vertical))
	assert.Equal(t, 8, b.Maze().NumberOfEdges())
}

func TestShortestPathBetween_Errors(t *testing.T) {
	b := newBuilder(t, 5, 5, 1)
	_, err := carve.ShortestPathBetween(b, 0, 24, carve.WithMaxCost(1))
	assert.ErrorIs(t, err, carve.ErrNoPath)

	negative := func(int, int, cell.Direction, cell.State, cell.State) int64 { return -1 }
	_, err = carve.ShortestPathBetween(b, 0, 24, carve.WithCostFunc(negative))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = carve.ShortestPathBetween(b, 0, 25)
	assert.ErrorIs(t, err, maze.ErrOutOfRange)
}

func TestCarvePath(t *testing.T) {
	b := newBuilder(t, 3, 3, 1)
	// 0-1 carved, 1-5 not adjacent, 5-8 carved
	assert.Equal(t, 2, carve.CarvePath(b, []int{0, 1}, true)+carve.CarvePath(b, []int{1, 5, 8}, true))
	assert.True(t, b.Maze().HasEdge(5, 8))
	assert.False(t, b.Maze().HasEdge(1, 4))
}

func TestBraid_RemovesAllDeadEnds(t *testing.T) {
	b := perfect(t, 8, 8, 3)
	before := len(carve.DeadEnds(b))
	require.Positive(t, before)

	merged, err := carve.Braid(b)
	require.NoError(t, err)
	assert.Positive(t, merged)
	assert.Empty(t, carve.DeadEnds(b))

	m := b.Maze()
	assert.True(t, m.IsConsistent())
	assert.Equal(t, 63+merged, m.NumberOfEdges())
}

func TestBraid_OneSided(t *testing.T) {
	b := perfect(t, 8, 8, 3)
	merged, err := carve.Braid(b, carve.WithCarving(false))
	require.NoError(t, err)
	require.Positive(t, merged)
	assert.False(t, b.Maze().IsConsistent())

	fixes, err := b.MakeBidirectionallyConsistent(b.FullRegion(), true)
	require.NoError(t, err)
	assert.Positive(t, fixes)
	assert.LessOrEqual(t, fixes, merged)
	assert.True(t, b.Maze().IsConsistent())
}

func TestBraidRandom(t *testing.T) {
	b := perfect(t, 8, 8, 5)
	before := len(carve.DeadEnds(b))
	require.GreaterOrEqual(t, before, 2)

	merged, err := carve.BraidRandom(b, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, merged)
	assert.LessOrEqual(t, len(carve.DeadEnds(b)), before-2)
}

func TestBraid_FrozenCellsUntouched(t *testing.T) {
	b := perfect(t, 6, 6, 2)
	b.FreezeDefinedCells()
	merged, err := carve.Braid(b)
	require.NoError(t, err)
	assert.Zero(t, merged)

	merged, err = carve.Braid(b, carve.WithPreserveExisting(false))
	require.NoError(t, err)
	assert.Positive(t, merged)
}

func TestMergeWalls(t *testing.T) {
	sum := func(a, c int) float64 { return float64(a + c) }

	b := perfect(t, 4, 4, 1)
	stopAt3 := carve.WithStop(func(carved, _, _ int, _ float64) bool { return carved >= 3 })
	carved, err := carve.MergeWalls(b, sum, stopAt3)
	require.NoError(t, err)
	assert.Equal(t, 3, carved)
	assert.Equal(t, 18, b.Maze().NumberOfEdges())

	// everything left goes; a 4×4 lattice has 24 edges
	carved, err = carve.MergeWalls(b, sum)
	require.NoError(t, err)
	assert.Equal(t, 6, carved)
	assert.Equal(t, 24, b.Maze().NumberOfEdges())

	b = perfect(t, 4, 4, 1)
	flat := func(int, int) float64 { return 1 }
	carved, err = carve.MergeWalls(b, flat, carve.WithThreshold(2))
	require.NoError(t, err)
	assert.Zero(t, carved)
	carved, err = carve.MergeWalls(b, flat, carve.WithAscending(), carve.WithThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 9, carved)
}

func TestMergeWalls_ScoreOrder(t *testing.T) {
	b := perfect(t, 5, 5, 9)
	var seen []float64
	record := carve.WithStop(func(_, _, _ int, score float64) bool {
		seen = append(seen, score)
		return false
	})
	_, err := carve.MergeWalls(b, func(a, c int) float64 { return float64(a * c) }, record)
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i-1], seen[i])
	}
}

func TestTrimDeadEnds_OnePass(t *testing.T) {
	b := perfect(t, 7, 7, 4)
	var want int
	for _, idx := range carve.DeadEnds(b) {
		if idx != b.Start() && idx != b.End() {
			want++
		}
	}
	trimmed, err := carve.TrimDeadEnds(b, 1)
	require.NoError(t, err)
	assert.Equal(t, want, trimmed)
}

func TestTrimDeadEnds_LeavesSolution(t *testing.T) {
	b := perfect(t, 6, 6, 8)
	res, err := b.Maze().Walk(b.Start())
	require.NoError(t, err)
	path, err := res.PathTo(b.End())
	require.NoError(t, err)

	trimmed, err := carve.TrimDeadEnds(b, 0)
	require.NoError(t, err)
	assert.Equal(t, b.NumberOfNodes()-len(path), trimmed)

	onPath := make(map[int]bool, len(path))
	for _, idx := range path {
		onPath[idx] = true
	}
	for idx := 0; idx < b.NumberOfNodes(); idx++ {
		assert.Equal(t, !onPath[idx], b.CellAt(idx).IsSolid(), "cell %d", idx)
	}
	assert.Equal(t, len(path)-1, b.Maze().NumberOfEdges())
}
