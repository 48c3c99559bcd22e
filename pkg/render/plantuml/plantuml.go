// Package plantuml writes worlds as PlantUML diagram descriptions.
//
// The document declares each node as a circle and each edge as a black arrow
// labelled with its cost at two decimal places:
//
//	@startuml
//	circle 0
//	circle 1
//	0 -[#black]-> 1 : 2.50
//	1 -[#black]-> 2 : 3.00
//	@enduml
//
// By default only nodes that appear as an edge source are declared, so a
// destination-only node (2 above) is drawn by PlantUML from the arrow alone.
// Set [Options.DeclareAll] to declare every endpoint.
package plantuml

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

const (
	header = "@startuml"
	footer = "@enduml"
)

// Options configures diagram output.
type Options struct {
	// DeclareAll declares the union of source and destination nodes instead
	// of sources only.
	DeclareAll bool
}

// Write writes the diagram for edges to w. Nodes are declared in order of
// first appearance; edges keep their input order.
func Write(w io.Writer, edges []world.Edge, opts Options) error {
	src := world.New("", edges)
	nodes := src.Sources()
	if opts.DeclareAll {
		nodes = src.Nodes()
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	for _, id := range nodes {
		fmt.Fprintf(bw, "circle %d\n", id)
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "%d -[#black]-> %d : %.2f\n", e.From, e.To, e.Cost)
	}
	fmt.Fprintln(bw, footer)

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write diagram")
	}
	return nil
}

// Export writes the diagram to the file at path, replacing any existing file.
func Export(path string, edges []world.Edge, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, cerr, "close %s", path)
		}
	}()
	return Write(f, edges, opts)
}
