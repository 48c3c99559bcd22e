package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/observability"
	"github.com/matzehuels/worldgen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
// Flags that were not set on the command line leave the config untouched.
type generateOpts struct {
	config     string  // TOML config path; empty uses config.Default()
	seed       uint64  // shared source seed
	nodes      int     // node count for every world
	ratio      float64 // connectivity ratio for sparse worlds
	minCost    float64 // lower cost bound for sparse worlds
	maxCost    float64 // upper cost bound for sparse worlds
	outputDir  string  // directory receiving the artifacts
	formats    string  // comma-separated output formats for every world
	declareAll bool    // declare destination-only nodes in .puml output
	metrics    string  // Prometheus textfile path; empty disables metrics
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		nodes:     config.DefaultNodes,
		ratio:     config.DefaultRatio,
		minCost:   config.DefaultMinCost,
		maxCost:   config.DefaultMaxCost,
		outputDir: config.DefaultOutputDir,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate worlds and write their artifacts",
		Long: `Generate the configured worlds and write one file per format.

With no flags this is the same as running worldgen on its own. A TOML file
given with --config replaces the default world list; the remaining flags
override matching fields of every configured world.`,
		Example: `  worldgen generate --seed 42
  worldgen generate --nodes 20 --ratio 0.1 --format csv,puml,html
  worldgen generate --config worlds.toml --output-dir out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if opts.metrics == "" {
				return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg)
			}
			return c.runWithMetrics(cmd.Context(), opts.metrics, func() error {
				return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file listing the worlds to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the random source (default: random)")
	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", opts.nodes, "number of nodes per world")
	cmd.Flags().Float64VarP(&opts.ratio, "ratio", "r", opts.ratio, "connectivity ratio of sparse worlds, in [0, 1]")
	cmd.Flags().Float64Var(&opts.minCost, "min-cost", opts.minCost, "lowest edge cost of sparse worlds")
	cmd.Flags().Float64Var(&opts.maxCost, "max-cost", opts.maxCost, "highest edge cost of sparse worlds")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory to write files into")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: csv, puml, dot, svg, pdf, png, html (comma-separated)")
	cmd.Flags().BoolVar(&opts.declareAll, "declare-all", false, "declare destination-only nodes in .puml output")
	cmd.Flags().StringVar(&opts.metrics, "metrics-file", "", "write Prometheus metrics to this textfile after the run")

	return cmd
}

// resolve loads the base config and applies every flag the user set.
func (o *generateOpts) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = &o.seed
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if flags.Changed("declare-all") {
		cfg.DeclareAll = o.declareAll
	}

	formats := parseFormats(o.formats)
	for i := range cfg.Worlds {
		w := &cfg.Worlds[i]
		if flags.Changed("nodes") {
			w.Nodes = o.nodes
		}
		if len(formats) > 0 {
			w.Formats = formats
		}
		if w.Kind != config.KindSparse {
			continue
		}
		if flags.Changed("ratio") {
			w.Ratio = o.ratio
		}
		if flags.Changed("min-cost") {
			w.MinCost = o.minCost
		}
		if flags.Changed("max-cost") {
			w.MaxCost = o.maxCost
		}
	}

	return cfg, nil
}

// runWithMetrics installs Prometheus hooks for the duration of fn and writes
// the collected metrics to path afterwards, also when fn fails.
func (c *CLI) runWithMetrics(ctx context.Context, path string, fn func() error) error {
	m := observability.NewMetricsHooks()
	observability.SetPipelineHooks(m)
	defer observability.Reset()

	runErr := fn()
	if err := m.WriteTextfile(path); err != nil {
		loggerFromContext(ctx).Warn("could not write metrics", "path", path, "err", err)
	}
	return runErr
}

// runGenerate executes cfg and prints a per-world summary to out.
func (c *CLI) runGenerate(ctx context.Context, out io.Writer, cfg *config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := pipeline.NewRunner(logger).Execute(ctx, cfg)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d worlds", len(result.Worlds)))

	for _, w := range result.Worlds {
		printSuccess(out, "%s (%s)", w.Name, w.Kind)
		printCounts(out, w.Stats.Nodes, w.Stats.Edges)
		for _, f := range w.Files {
			printFile(out, f)
		}
	}
	printKeyValue(out, "seed", fmt.Sprint(result.Seed))
	return nil
}
