// Package config loads generation and service settings.
//
// Precedence, lowest first: Default, an optional YAML profile, a .env file,
// and the process environment (MAZE_* variables). Load validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/generator"
)

// ErrInvalid indicates a configuration failing validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds every setting of the CLI and the HTTP service.
type Config struct {
	Generation generator.Request `yaml:"generation"`
	Server     ServerConfig      `yaml:"server"`
	Log        LogConfig         `yaml:"log"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	ListenAddr   string `yaml:"listen_addr"`   // address for the HTTP listener
	MaxDimension int    `yaml:"max_dimension"` // largest width or height accepted
	GinMode      string `yaml:"gin_mode"`      // gin mode (release, debug, test)
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generation: generator.DefaultRequest(),
		Server: ServerConfig{
			ListenAddr:   ":8080",
			MaxDimension: 200,
			GinMode:      "release",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds a Config from defaults, the YAML profile at profilePath (skipped
// when empty), the .env file at envPath (".env" when empty; a missing file is
// ignored) and MAZE_* environment variables, then validates it.
func Load(profilePath, envPath string) (Config, error) {
	cfg := Default()

	if profilePath != "" {
		raw, err := os.ReadFile(profilePath)
		if err != nil {
			return cfg, fmt.Errorf("config: read profile: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse profile %s: %w", profilePath, err)
		}
	}

	if envPath == "" {
		envPath = ".env"
	}
	dotenv, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: read %s: %w", envPath, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err = cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides fields from MAZE_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	g := &c.Generation
	strs := map[string]*string{
		"MAZE_ALGORITHM":   &g.Algorithm,
		"MAZE_BRANCH_ROOT": &g.BranchRoot,
		"MAZE_LISTEN_ADDR": &c.Server.ListenAddr,
		"MAZE_GIN_MODE":    &c.Server.GinMode,
		"MAZE_LOG_LEVEL":   &c.Log.Level,
		"MAZE_LOG_FORMAT":  &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"MAZE_WIDTH":         &g.Width,
		"MAZE_HEIGHT":        &g.Height,
		"MAZE_MAX_STEPS":     &g.MaxSteps,
		"MAZE_BRAID_COUNT":   &g.BraidCount,
		"MAZE_TRIM_PASSES":   &g.TrimPasses,
		"MAZE_MAX_DIMENSION": &c.Server.MaxDimension,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
		}
		*dst = n
	}

	if v, ok := lookup("MAZE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MAZE_SEED must be an integer: %v", ErrInvalid, err)
		}
		g.Seed = n
	}
	if v, ok := lookup("MAZE_FAVOR_HORIZONTAL"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: MAZE_FAVOR_HORIZONTAL must be a number: %v", ErrInvalid, err)
		}
		g.FavorHorizontal = f
	}
	if v, ok := lookup("MAZE_BRAID_CARVING"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: MAZE_BRAID_CARVING must be a boolean: %v", ErrInvalid, err)
		}
		g.BraidCarving = b
	}
	return nil
}

// Validate checks the generation request against the service limits and the
// logging settings.
func (c Config) Validate() error {
	if c.Server.MaxDimension <= 0 {
		return fmt.Errorf("%w: max_dimension %d", ErrInvalid, c.Server.MaxDimension)
	}
	if err := c.CheckRequest(c.Generation); err != nil {
		return err
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("%w: empty listen_addr", ErrInvalid)
	}
	switch c.Server.GinMode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("%w: gin mode %q", ErrInvalid, c.Server.GinMode)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// CheckRequest validates req and enforces MaxDimension.
func (c Config) CheckRequest(req generator.Request) error {
	if req.Width > c.Server.MaxDimension || req.Height > c.Server.MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds max dimension %d",
			ErrInvalid, req.Width, req.Height, c.Server.MaxDimension)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
