package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Costs labels each edge with its cost at two decimal places.
	Costs bool
	// Engine selects the Graphviz layout engine ("dot", "neato", "circo", ...).
	// Empty means circo, which keeps large dense worlds readable.
	Engine string
}

// ToDOT converts a world to Graphviz DOT source. Every endpoint is declared
// as a node in first-appearance order; parallel edges are kept.
func ToDOT(w *world.World, opts Options) string {
	engine := opts.Engine
	if engine == "" {
		engine = "circo"
	}

	var buf bytes.Buffer
	name := w.Name
	if name == "" {
		name = "world"
	}
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	fmt.Fprintf(&buf, "  layout=%s;\n", engine)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [color=black, arrowsize=0.6, fontsize=9];\n")
	buf.WriteString("\n")

	for _, id := range w.Nodes() {
		fmt.Fprintf(&buf, "  %d;\n", id)
	}

	buf.WriteString("\n")
	for _, e := range w.Edges {
		if opts.Costs {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%.2f\"];\n", e.From, e.To, e.Cost)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz runtime.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
