package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/errors"
	wio "github.com/matzehuels/worldgen/pkg/io"
	"github.com/matzehuels/worldgen/pkg/pipeline"
)

// renderFormats are the formats render can produce from an edge list.
var renderFormats = map[string]bool{
	config.FormatPUML: true,
	config.FormatDOT:  true,
	config.FormatSVG:  true,
	config.FormatPDF:  true,
	config.FormatPNG:  true,
	config.FormatHTML: true,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir  string // defaults to the input file's directory
	formats    string // comma-separated
	engine     string // Graphviz layout engine
	declareAll bool   // declare destination-only nodes in .puml output
	noCache    bool   // skip the layout cache
}

// renderCommand creates the render command for drawing an existing CSV world.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render a world edge list as a diagram",
		Long: `Render a world edge list in one or more diagram formats.

Each output is named after the input file: worlds/tiny.csv rendered as svg
becomes worlds/tiny.svg unless --output-dir says otherwise. The svg, pdf and
png formats lay the graph out with Graphviz; pdf and png also need
rsvg-convert on PATH.`,
		Example: `  worldgen render sparse_world.csv -f svg
  worldgen render tiny.csv -f puml,html --declare-all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if len(formats) == 0 {
				formats = []string{config.FormatSVG}
			}
			if err := errors.ValidateFormats(formats, renderFormats); err != nil {
				return err
			}

			w, err := wio.ImportCSV(args[0])
			if err != nil {
				return err
			}

			dir := opts.outputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			ropts := pipeline.RenderOptions{
				DeclareAll: opts.declareAll,
				Engine:     opts.engine,
				Cache:      c.newCache(opts.noCache),
			}

			// Formats write distinct files, so they render in parallel.
			paths := make([]string, len(formats))
			g, gctx := errgroup.WithContext(ctx)
			for i, f := range formats {
				g.Go(func() error {
					path, err := pipeline.WriteArtifact(gctx, dir, w, f, ropts)
					paths[i] = path
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			prog.done("Rendered " + w.Name)

			out := cmd.OutOrStdout()
			printSuccess(out, "%s", w.Name)
			for _, p := range paths {
				printFile(out, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to write files into (default: next to the input)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg (default), puml, dot, pdf, png, html (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Graphviz layout engine (default: circo)")
	cmd.Flags().BoolVar(&opts.declareAll, "declare-all", false, "declare destination-only nodes in .puml output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always recompute Graphviz layouts")

	return cmd
}
