// Package render turns worlds into diagrams.
//
// # Overview
//
// Each subpackage targets one diagram language or viewer:
//
//   - [plantuml]: PlantUML activity-style circles and arrows (the .puml
//     artifact written next to every world's CSV)
//   - [nodelink]: Graphviz DOT source and in-process SVG rendering
//   - [echarts]: a self-contained HTML page with a force-directed layout
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	dot := nodelink.ToDOT(w, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [plantuml]: github.com/matzehuels/worldgen/pkg/render/plantuml
// [nodelink]: github.com/matzehuels/worldgen/pkg/render/nodelink
// [echarts]: github.com/matzehuels/worldgen/pkg/render/echarts
package render
