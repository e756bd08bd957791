package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// adjList is a tiny undirected test graph.
type adjList [][]int

func (a adjList) NumberOfNodes() int      { return len(a) }
func (a adjList) Neighbors(idx int) []int { return a[idx] }

// cycle4 is the undirected cycle 0–1–2–3–0.
var cycle4 = adjList{{1, 3}, {0, 2}, {1, 3}, {2, 0}}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(cycle4, 4)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(cycle4, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a simple cycle and checks depths and parents.
func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(cycle4, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	assert.Equal(t, bfs.NoParent, res.Parent[0])
	assert.Equal(t, 1, res.Parent[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	idx, depth := res.Farthest()
	assert.Equal(t, 2, idx)
	assert.Equal(t, 2, depth)
}

// TestBFS_Disconnected leaves unreachable nodes marked Unreached.
func TestBFS_Disconnected(t *testing.T) {
	g := adjList{{1}, {0}, {}}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Reached(2))
	assert.Equal(t, bfs.Unreached, res.Depth[2])

	_, err = res.PathTo(2)
	assert.True(t, errors.Is(err, bfs.ErrNoPath))
}

// TestMulti_Sources seeds two corners of a 5×1 lattice.
func TestMulti_Sources(t *testing.T) {
	l, err := gridgraph.NewLattice(5, 1)
	require.NoError(t, err)

	res, err := bfs.Multi(l, []int{0, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, res.Depth)
	assert.Equal(t, 0, res.Source[1])
	assert.Equal(t, 4, res.Source[3])
	// the middle is reached first by the wave of the first source
	assert.Equal(t, 0, res.Source[2])
	assert.Len(t, res.Order, 5)
}

// TestBFS_MaxDepthAndFilter checks depth limiting and neighbour filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	l, err := gridgraph.NewLattice(4, 4)
	require.NoError(t, err)

	res, err := bfs.BFS(l, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 4}, res.Order)

	// Only walk east along row 0.
	res, err = bfs.BFS(l, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr == curr+1 && nbr < 4 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestBFS_Hooks verifies hook order and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq []int
	boom := errors.New("boom")
	_, err := bfs.BFS(cycle4, 0,
		bfs.WithOnEnqueue(func(idx, _ int) { enq = append(enq, idx) }),
		bfs.WithOnDequeue(func(idx, _ int) { deq = append(deq, idx) }),
		bfs.WithOnVisit(func(idx, _ int) error {
			if idx == 3 {
				return boom
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1, 3, 2}, enq)
	assert.Equal(t, []int{0, 1, 3}, deq)
}

// TestBFS_Cancelled returns the context error before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(cycle4, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}
