// Package nodelink renders worlds as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a world to DOT, then render to SVG in-process:
//
//	dot := nodelink.ToDOT(w, nodelink.Options{Costs: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output pass the SVG to [render.ToPDF] or [render.ToPNG].
//
// # DOT Format
//
// Nodes are drawn as circles named by their integer ID. Unlike the PlantUML
// output, every endpoint is declared, including destination-only nodes.
// The default layout engine is circo; dense worlds (a fully connected world
// of 100 nodes has 9900 edges) take a long time with dot.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
//
// [render.ToPDF]: github.com/matzehuels/worldgen/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/worldgen/pkg/render.ToPNG
package nodelink
