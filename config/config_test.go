package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, generator.Backtracking, cfg.Generation.Algorithm)
}

func TestLoad_Precedence(t *testing.T) {
	profile := writeFile(t, "maze.yaml", `
generation:
  width: 30
  height: 20
  algorithm: wilson
  seed: 9
  favor_horizontal: 0.25
server:
  listen_addr: ":9000"
log:
  level: debug
  format: json
`)
	dotenv := writeFile(t, ".env", "MAZE_HEIGHT=12\nMAZE_ALGORITHM=kruskal\nMAZE_BRAID_CARVING=false\n")
	t.Setenv("MAZE_ALGORITHM", "division")
	t.Setenv("MAZE_TRIM_PASSES", "-1")

	cfg, err := config.Load(profile, dotenv)
	require.NoError(t, err)

	g := cfg.Generation
	// profile, then .env over profile, then environment over .env
	assert.Equal(t, 30, g.Width)
	assert.Equal(t, 12, g.Height)
	assert.Equal(t, "division", g.Algorithm)
	assert.Equal(t, int64(9), g.Seed)
	assert.Equal(t, 0.25, g.FavorHorizontal)
	assert.False(t, g.BraidCarving)
	assert.Equal(t, -1, g.TrimPasses)
	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, 200, cfg.Server.MaxDimension) // untouched default
	assert.Equal(t, config.LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoad_Errors(t *testing.T) {
	noEnv := filepath.Join(t.TempDir(), "none.env")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), noEnv)
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yaml", "generation: [1, 2"), noEnv)
	assert.Error(t, err)

	t.Setenv("MAZE_WIDTH", "wide")
	_, err = config.Load("", noEnv)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"too wide":      func(c *config.Config) { c.Generation.Width = 500 },
		"zero height":   func(c *config.Config) { c.Generation.Height = 0 },
		"algorithm":     func(c *config.Config) { c.Generation.Algorithm = "eller" },
		"bias":          func(c *config.Config) { c.Generation.FavorHorizontal = -0.1 },
		"listen":        func(c *config.Config) { c.Server.ListenAddr = "" },
		"max dimension": func(c *config.Config) { c.Server.MaxDimension = 0 },
		"level":         func(c *config.Config) { c.Log.Level = "loud" },
		"format":        func(c *config.Config) { c.Log.Format = "xml" },
		"gin mode":      func(c *config.Config) { c.Server.GinMode = "prod" },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid, name)
	}
	assert.NoError(t, config.Default().Validate())
}

func TestCheckRequest_WrapsGeneratorError(t *testing.T) {
	req := generator.DefaultRequest()
	req.Algorithm = "eller"
	err := config.Default().CheckRequest(req)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "WARN", line["level"])

	_, err = config.NewLogger(config.LogConfig{Level: "verbose"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
