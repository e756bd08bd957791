package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/httpapi"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile string
	envFile string
}

// setup loads the configuration and builds the logger writing to stderr.
func (g *globalFlags) setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.profile, g.envFile)
	if err != nil {
		return cfg, nil, err
	}
	log, err := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "mazegen",
		Short:         "Generate grid mazes and their metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.profile, "config", "", "YAML profile to load")
	root.PersistentFlags().StringVar(&g.envFile, "env", "", "dotenv file (default .env, ignored when missing)")

	root.AddCommand(newGenerateCmd(g), newAlgorithmsCmd(), newServeCmd(g))
	return root
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the carving algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(generator.Algorithms(), "\n"))
			return err
		},
	}
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	var (
		req    generator.Request
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			final := overlayFlags(cmd, cfg.Generation, req)

			rep, err := generator.Generate(cmd.Context(), final, generator.WithLogger(log))
			if err != nil {
				return err
			}
			if format == "text" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rep.Rows, "\n"))
				return err
			}
			return generator.Encode(cmd.OutOrStdout(), rep, format)
		},
	}

	f := cmd.Flags()
	f.IntVar(&req.Width, "width", 0, "maze width in cells")
	f.IntVar(&req.Height, "height", 0, "maze height in cells")
	f.StringVar(&req.Algorithm, "algorithm", "", "carving algorithm, see mazegen algorithms")
	f.Int64Var(&req.Seed, "seed", 0, "random seed")
	f.Float64Var(&req.FavorHorizontal, "bias", 0, "binary-tree and division horizontal bias in [0,1]")
	f.IntVar(&req.MaxSteps, "max-steps", 0, "step ceiling, 0 for none")
	f.IntVar(&req.BraidCount, "braid", 0, "dead ends to braid, -1 for all")
	f.BoolVar(&req.BraidCarving, "braid-carving", true, "open both sides when braiding")
	f.IntVar(&req.TrimPasses, "trim", 0, "dead-end trim passes, -1 until none")
	f.StringVar(&req.BranchRoot, "root", "", "branch level root policy: solution or junction")
	f.StringVar(&format, "format", "json", "output format: json, yaml or text")
	return cmd
}

// overlayFlags copies the explicitly set flag values of flags onto base.
func overlayFlags(cmd *cobra.Command, base, flags generator.Request) generator.Request {
	set := cmd.Flags().Changed
	if set("width") {
		base.Width = flags.Width
	}
	if set("height") {
		base.Height = flags.Height
	}
	if set("algorithm") {
		base.Algorithm = flags.Algorithm
	}
	if set("seed") {
		base.Seed = flags.Seed
	}
	if set("bias") {
		base.FavorHorizontal = flags.FavorHorizontal
	}
	if set("max-steps") {
		base.MaxSteps = flags.MaxSteps
	}
	if set("braid") {
		base.BraidCount = flags.BraidCount
	}
	if set("braid-carving") {
		base.BraidCarving = flags.BraidCarving
	}
	if set("trim") {
		base.TrimPasses = flags.TrimPasses
	}
	if set("root") {
		base.BranchRoot = flags.BranchRoot
	}
	return base
}

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve maze generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.ListenAddr = addr
			}
			gin.SetMode(cfg.Server.GinMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return httpapi.NewServer(cfg, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the configuration")
	return cmd
}
