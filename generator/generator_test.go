package generator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/generator"
)

func request(algorithm string) generator.Request {
	req := generator.DefaultRequest()
	req.Width, req.Height = 8, 6
	req.Algorithm = algorithm
	req.Seed = 17
	return req
}

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{
		"aldous-broder", "backtracking", "binary-tree", "division",
		"kruskal", "shortest-path", "wilson",
	}, generator.Algorithms())

	_, err := generator.Lookup("prim")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

func TestGenerate_AllAlgorithms(t *testing.T) {
	for _, name := range generator.Algorithms() {
		t.Run(name, func(t *testing.T) {
			rep, err := generator.Generate(context.Background(), request(name))
			require.NoError(t, err)

			_, err = uuid.Parse(rep.ID)
			assert.NoError(t, err)
			assert.Equal(t, 47, rep.Edges)
			assert.True(t, rep.Perfect)
			assert.True(t, rep.Consistent)
			assert.Equal(t, 48, rep.Summary.Cells)
			assert.Len(t, rep.Rows, 13)
			require.NotEmpty(t, rep.Solution)
			assert.Equal(t, 0, rep.Solution[0])
			assert.Equal(t, 47, rep.Solution[len(rep.Solution)-1])
			assert.Equal(t, len(rep.Solution), rep.Summary.SolutionLength)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.Generate(context.Background(), request(generator.Wilson))
	require.NoError(t, err)
	b, err := generator.Generate(context.Background(), request(generator.Wilson))
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.Summary, b.Summary)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerate_Braid(t *testing.T) {
	req := request(generator.Backtracking)
	req.BraidCount = -1
	rep, err := generator.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Positive(t, rep.Braided)
	assert.Zero(t, rep.Summary.DeadEnds)
	assert.Equal(t, 47+rep.Braided, rep.Edges)
	assert.False(t, rep.Perfect)
	assert.True(t, rep.Consistent)
}

func TestGenerate_OneSidedBraid(t *testing.T) {
	req := request(generator.Kruskal)
	req.BraidCount = 3
	req.BraidCarving = false
	rep, err := generator.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Braided)
	assert.False(t, rep.Consistent)
}

func TestGenerate_Trim(t *testing.T) {
	req := request(generator.Kruskal)
	req.TrimPasses = -1
	rep, err := generator.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 48-len(rep.Solution), rep.Trimmed)
	assert.Equal(t, len(rep.Solution)-1, rep.Edges)
	assert.Equal(t, rep.Trimmed, rep.Summary.Solid)
	assert.Equal(t, 2, rep.Summary.DeadEnds)
	assert.Zero(t, rep.Summary.LongestDeadEnd)
}

func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()
	bad := map[string]func(r *generator.Request){
		"width":      func(r *generator.Request) { r.Width = 0 },
		"bias":       func(r *generator.Request) { r.FavorHorizontal = 2 },
		"steps":      func(r *generator.Request) { r.MaxSteps = -1 },
		"braid":      func(r *generator.Request) { r.BraidCount = -2 },
		"trim":       func(r *generator.Request) { r.TrimPasses = -5 },
		"branchRoot": func(r *generator.Request) { r.BranchRoot = "leaf" },
	}
	for name, mutate := range bad {
		req := request(generator.Backtracking)
		mutate(&req)
		_, err := generator.Generate(ctx, req)
		assert.ErrorIs(t, err, generator.ErrInvalidRequest, name)
	}

	_, err := generator.Generate(ctx, request("prim"))
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	req := request(generator.AldousBroder)
	req.Width, req.Height, req.MaxSteps = 10, 10, 3
	_, err = generator.Generate(ctx, req)
	assert.ErrorIs(t, err, carve.ErrIncomplete)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = generator.Generate(cancelled, request(generator.Backtracking))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncode(t *testing.T) {
	rep, err := generator.Generate(context.Background(), request(generator.Division))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, generator.Encode(&buf, rep, "json"))
	var fromJSON generator.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *rep, fromJSON)

	buf.Reset()
	require.NoError(t, generator.Encode(&buf, rep, "yaml"))
	var fromYAML generator.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *rep, fromYAML)

	assert.ErrorIs(t, generator.Encode(&buf, rep, "xml"), generator.ErrUnknownFormat)
}
