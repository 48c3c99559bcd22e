package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	wio "github.com/matzehuels/worldgen/pkg/io"
	"github.com/matzehuels/worldgen/pkg/world"
)

// matrixNodeLimit caps the matrix side length (largest node ID + 1) that
// --matrix prints.
const matrixNodeLimit = 30

// idDisplayLimit caps how many node IDs a summary line lists.
const idDisplayLimit = 10

// inspectCommand creates the inspect command for summarizing a CSV world.
func (c *CLI) inspectCommand() *cobra.Command {
	var matrix bool

	cmd := &cobra.Command{
		Use:   "inspect [file.csv]",
		Short: "Print statistics for a world edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wio.ImportCSV(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded world", "name", w.Name, "edges", w.EdgeCount())

			out := cmd.OutOrStdout()
			printStats(out, w)
			if !matrix {
				return nil
			}
			if n := world.MatrixSize(w.Edges); n > matrixNodeLimit {
				printWarning(out, "matrix skipped: %d×%d exceeds %d×%d", n, n, matrixNodeLimit, matrixNodeLimit)
				return nil
			}
			fmt.Fprintln(out)
			printMatrix(out, world.Matrix(w.Edges))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&matrix, "matrix", "m", false, "also print the cost matrix (small worlds only)")
	return cmd
}

func printStats(out io.Writer, w *world.World) {
	s := w.Stats()

	printTitle(out, w.Name)
	printKeyValue(out, "nodes", styleNumber.Render(fmt.Sprint(s.Nodes)))
	printKeyValue(out, "edges", styleNumber.Render(fmt.Sprint(s.Edges)))
	if s.Edges > 0 {
		printKeyValue(out, "cost range", fmt.Sprintf("%.2f – %.2f", s.MinCost, s.MaxCost))
		printKeyValue(out, "mean cost", fmt.Sprintf("%.2f", s.MeanCost))
	}
	printKeyValue(out, "duplicates", fmt.Sprint(s.Duplicates))
	printKeyValue(out, "self loops", fmt.Sprint(s.SelfLoops))

	if len(s.NoIncoming) > 0 {
		printWarning(out, "no incoming edges: %s", formatIDs(s.NoIncoming, idDisplayLimit))
	}
	if len(s.NoOutgoing) > 0 {
		printWarning(out, "no outgoing edges: %s", formatIDs(s.NoOutgoing, idDisplayLimit))
	}
}

// printMatrix prints m as a right-aligned grid with "-" for missing pairs.
func printMatrix(out io.Writer, m [][]float64) {
	const width = 7

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 4))
	for j := range m {
		fmt.Fprintf(&b, "%*d", width, j)
	}
	fmt.Fprintln(out, styleDim.Render(b.String()))

	for i, row := range m {
		b.Reset()
		fmt.Fprintf(&b, "%4d", i)
		for _, v := range row {
			if math.IsInf(v, 1) {
				fmt.Fprintf(&b, "%*s", width, "-")
			} else {
				fmt.Fprintf(&b, "%*.2f", width, v)
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
