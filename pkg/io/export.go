package io

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

// Header is the first record of every edge-list file.
var Header = []string{"From", "To", "Cost"}

// FormatCost renders a cost at full round-trip precision.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// WriteCSV writes the header and one record per edge to w.
func WriteCSV(w io.Writer, edges []world.Edge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write header")
	}

	rec := make([]string, 3)
	for _, e := range edges {
		rec[0] = strconv.Itoa(e.From)
		rec[1] = strconv.Itoa(e.To)
		rec[2] = FormatCost(e.Cost)
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write edge %d->%d", e.From, e.To)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "flush")
	}
	return nil
}

// ExportCSV writes edges to the file at path, replacing any existing file.
// This is a convenience wrapper around [WriteCSV] for file-based output.
func ExportCSV(path string, edges []world.Edge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, cerr, "close %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, edges); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
