package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/cell"
	"github.com/katalvlaran/labyrinth/maze"
)

// snake carves a boustrophedon path through a 3×3 grid:
//
//	6 7 8
//	3 4 5
//	0 1 2
//
// 0-1-2, 2-5, 5-4-3, 3-6, 6-7-8.
func snake(t *testing.T) *maze.Builder {
	t.Helper()
	b := newBuilder(t, 3, 3)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 5}, {5, 4}, {4, 3}, {3, 6}, {6, 7}, {7, 8}} {
		require.True(t, b.CarvePassageIndex(p[0], p[1], true))
	}
	return b
}

// TestMaze_BoundaryExits checks the two forced outward openings.
func TestMaze_BoundaryExits(t *testing.T) {
	b := snake(t)
	m := b.Maze()
	assert.True(t, m.Directions(0).Has(cell.South))
	assert.True(t, m.Directions(8).Has(cell.East))
	// outward openings are not graph steps
	assert.Equal(t, []int{1}, m.Neighbors(0))
	assert.Equal(t, []int{7}, m.Neighbors(8))
}

// TestMaze_GraphQueries covers edges, connectivity and traversal.
func TestMaze_GraphQueries(t *testing.T) {
	m := snake(t).Maze()
	assert.Equal(t, 8, m.NumberOfEdges())
	assert.True(t, m.IsConsistent())
	assert.True(t, m.IsConnected())
	assert.True(t, m.IsPerfect())
	assert.True(t, m.HasEdge(2, 5))
	assert.False(t, m.HasEdge(1, 4))
	assert.Equal(t, []int{0, 8}, m.DeadEnds())

	res, err := m.Walk(m.Start())
	require.NoError(t, err)
	path, err := res.PathTo(m.End())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 4, 3, 6, 7, 8}, path)
}

// TestMaze_SharesGrid shows a snapshot observes later builder edits.
func TestMaze_SharesGrid(t *testing.T) {
	b := snake(t)
	m := b.Maze()
	require.True(t, b.CarvePassageIndex(1, 4, false))
	assert.True(t, m.HasEdge(1, 4))
	assert.False(t, m.IsPerfect())

	require.NoError(t, b.AddDirectionsIndex(0, cell.North))
	assert.False(t, m.IsConsistent())
}

// TestMaze_String renders the snake, north row first.
func TestMaze_String(t *testing.T) {
	m := snake(t).Maze()
	want := []string{
		"+---+---+---+",
		"|         E  ",
		"+   +---+---+",
		"|           |",
		"+---+---+   +",
		"| S         |",
		"+   +---+---+",
	}
	assert.Equal(t, want, m.Rows())
	assert.Equal(t, strings.Join(want, "\n")+"\n", m.String())
}
