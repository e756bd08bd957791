package carve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/maze"
)

// generator runs one spanning-tree algorithm on a fresh builder.
type generator struct {
	name string
	run  func(b *maze.Builder) error
}

var generators = []generator{
	{"backtracking", func(b *maze.Builder) error { return carve.RecursiveBacktracking(b) }},
	{"aldous-broder", func(b *maze.Builder) error { return carve.AldousBroder(b) }},
	{"wilson", func(b *maze.Builder) error { return carve.Wilson(b) }},
	{"binary-tree", func(b *maze.Builder) error { return carve.BinaryTree(b) }},
	{"division", func(b *maze.Builder) error { return carve.RecursiveDivision(b) }},
	{"kruskal", func(b *maze.Builder) error { return carve.Kruskal(b) }},
	{"shortest-path", func(b *maze.Builder) error { return carve.ShortestPath(b, b.End()) }},
	{"shortest-path-random", func(b *maze.Builder) error {
		return carve.ShortestPath(b, 0, carve.WithRandomCosts(9))
	}},
}

// SpanningTreeSuite checks that every generator yields a perfect maze.
type SpanningTreeSuite struct {
	suite.Suite
}

func (s *SpanningTreeSuite) TestPerfectMazes() {
	sizes := [][2]int{{2, 2}, {5, 5}, {7, 3}, {1, 6}, {6, 1}, {12, 9}}
	for _, g := range generators {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed%d", g.name, sz[0], sz[1], seed)
				b, err := maze.New(sz[0], sz[1], maze.WithSeed(seed))
				require.NoError(s.T(), err, name)
				require.NoError(s.T(), g.run(b), name)

				m := b.Maze()
				n := m.NumberOfNodes()
				s.Equal(n-1, m.NumberOfEdges(), name)
				s.True(m.IsConsistent(), name)
				s.True(m.IsConnected(), name)
				s.True(m.IsPerfect(), name)
			}
		}
	}
}

func (s *SpanningTreeSuite) TestDeterministicForSeed() {
	for _, g := range generators {
		b1, _ := maze.New(9, 7, maze.WithSeed(7))
		b2, _ := maze.New(9, 7, maze.WithSeed(7))
		require.NoError(s.T(), g.run(b1))
		require.NoError(s.T(), g.run(b2))
		s.Equal(b1.Maze().Edges(), b2.Maze().Edges(), g.name)
	}
}

func (s *SpanningTreeSuite) TestConsistencyRepairIsNoOp() {
	for _, g := range generators {
		b, _ := maze.New(6, 6, maze.WithSeed(3))
		require.NoError(s.T(), g.run(b))
		fixes, err := b.MakeBidirectionallyConsistent(b.FullRegion(), true)
		require.NoError(s.T(), err)
		s.Zero(fixes, g.name)
	}
}

func TestSpanningTreeSuite(t *testing.T) {
	suite.Run(t, new(SpanningTreeSuite))
}
