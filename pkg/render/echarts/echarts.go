// Package echarts renders a world as a standalone interactive HTML page
// using go-echarts' force-directed graph series.
package echarts

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

// Options configures the HTML page.
type Options struct {
	// Title is the page title; defaults to the world name.
	Title string
	// Repulsion is the force layout's node repulsion; defaults to 400.
	Repulsion float32
}

// Render writes an HTML page for w to out.
func Render(out io.Writer, w *world.World, o Options) error {
	page := components.NewPage()
	page.SetPageTitle(pageTitle(w, o))
	page.AddCharts(graphChart(w, o))
	if err := page.Render(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render html")
	}
	return nil
}

// RenderBytes is like Render but returns the page.
func RenderBytes(w *world.World, o Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, w, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export writes the page to path, replacing any existing file.
func Export(path string, w *world.World, o Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, cerr, "close %s", path)
		}
	}()
	return Render(f, w, o)
}

func pageTitle(w *world.World, o Options) string {
	if o.Title != "" {
		return o.Title
	}
	return w.Name
}

func graphChart(w *world.World, o Options) *charts.Graph {
	title := pageTitle(w, o)
	repulsion := o.Repulsion
	if repulsion == 0 {
		repulsion = 400
	}

	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	nodes, links := graphData(w)
	g.AddSeries(
		"world",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "force",
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: repulsion},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "inside",
		}),
	)
	return g
}

// graphData converts edges to echarts nodes and links. Parallel edges become
// separate links; link values carry the cost for tooltips.
func graphData(w *world.World) ([]opts.GraphNode, []opts.GraphLink) {
	ids := w.Nodes()
	nodes := make([]opts.GraphNode, len(ids))
	for i, id := range ids {
		nodes[i] = opts.GraphNode{Name: strconv.Itoa(id)}
	}

	links := make([]opts.GraphLink, len(w.Edges))
	for i, e := range w.Edges {
		links[i] = opts.GraphLink{
			Source: strconv.Itoa(e.From),
			Target: strconv.Itoa(e.To),
			Value:  float32(e.Cost),
		}
	}
	return nodes, links
}
