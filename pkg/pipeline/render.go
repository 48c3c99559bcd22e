package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/worldgen/pkg/cache"
	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/io"
	"github.com/matzehuels/worldgen/pkg/observability"
	"github.com/matzehuels/worldgen/pkg/render"
	"github.com/matzehuels/worldgen/pkg/render/echarts"
	"github.com/matzehuels/worldgen/pkg/render/nodelink"
	"github.com/matzehuels/worldgen/pkg/render/plantuml"
	"github.com/matzehuels/worldgen/pkg/world"
)

// labelEdgeLimit caps the world size for which DOT edges carry cost labels.
const labelEdgeLimit = 400

// pngScale is the rsvg-convert zoom factor for PNG output.
const pngScale = 2.0

// RenderOptions configures artifact rendering.
type RenderOptions struct {
	// DeclareAll declares destination-only nodes in PlantUML output.
	DeclareAll bool
	// Engine is the Graphviz layout engine for dot/svg/pdf/png output.
	Engine string
	// Cache holds laid-out SVGs keyed by their DOT source. Nil disables it.
	Cache cache.Cache
}

// ArtifactPath returns the path of a world's artifact: dir/<name>.<format>.
func ArtifactPath(dir, name, format string) string {
	return filepath.Join(dir, name+"."+format)
}

// WriteArtifact renders w in format and writes it to dir, replacing any
// existing file. It returns the written path.
func WriteArtifact(ctx context.Context, dir string, w *world.World, format string, opts RenderOptions) (path string, err error) {
	path = ArtifactPath(dir, w.Name, format)

	hooks := observability.Pipeline()
	hooks.OnWriteStart(ctx, w.Name, format, path)
	start := time.Now()
	defer func() { hooks.OnWriteComplete(ctx, w.Name, format, path, time.Since(start), err) }()

	switch format {
	case config.FormatCSV:
		return path, io.ExportCSV(path, w.Edges)
	case config.FormatPUML:
		return path, plantuml.Export(path, w.Edges, plantuml.Options{DeclareAll: opts.DeclareAll})
	case config.FormatHTML:
		return path, echarts.Export(path, w, echarts.Options{})
	case config.FormatDOT, config.FormatSVG, config.FormatPDF, config.FormatPNG:
		data, err := renderGraphviz(ctx, w, format, opts)
		if err != nil {
			return path, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return path, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		return path, nil
	default:
		return path, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

func renderGraphviz(ctx context.Context, w *world.World, format string, opts RenderOptions) ([]byte, error) {
	dot := nodelink.ToDOT(w, nodelink.Options{
		Costs:  w.EdgeCount() <= labelEdgeLimit,
		Engine: opts.Engine,
	})
	if format == config.FormatDOT {
		return []byte(dot), nil
	}

	svg, err := layoutSVG(ctx, dot, opts.Cache)
	if err != nil {
		return nil, err
	}
	switch format {
	case config.FormatPDF:
		return render.ToPDF(ctx, svg)
	case config.FormatPNG:
		return render.ToPNG(ctx, svg, pngScale)
	default:
		return svg, nil
	}
}

// layoutSVG renders dot through c. Cache failures fall back to a fresh
// layout; they never fail the write.
func layoutSVG(ctx context.Context, dot string, c cache.Cache) ([]byte, error) {
	if c == nil {
		return nodelink.RenderSVG(ctx, dot)
	}
	key := cache.Key(config.FormatSVG, []byte(dot))
	if svg, hit, err := c.Get(ctx, key); err == nil && hit {
		return svg, nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, svg)
	return svg, nil
}
