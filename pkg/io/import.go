package io

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

// ReadCSV parses an edge-list document from r. It does not close r.
func ReadCSV(r io.Reader) ([]world.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	head, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty input: missing %s header", strings.Join(Header, ","))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read header")
	}
	if !isHeader(head) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "line 1: expected header %s, got %s",
			strings.Join(Header, ","), strings.Join(head, ","))
	}

	edges := []world.Edge{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if stderrors.As(err, &pe) {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", pe.Line)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read")
		}
		line, _ := cr.FieldPos(0)
		e, err := parseEdge(rec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", line)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// ImportCSV reads the edge-list file at path.
// The returned world is named after the file's base name without extension.
func ImportCSV(path string) (*world.World, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	edges, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return world.New(name, edges), nil
}

func isHeader(rec []string) bool {
	if len(rec) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), h) {
			return false
		}
	}
	return true
}

func parseEdge(rec []string) (world.Edge, error) {
	if len(rec) != 3 {
		return world.Edge{}, errors.New(errors.ErrCodeInvalidFormat, "expected 3 fields, got %d", len(rec))
	}
	from, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return world.Edge{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "from node %q", rec[0])
	}
	to, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return world.Edge{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "to node %q", rec[1])
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return world.Edge{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cost %q", rec[2])
	}
	return world.Edge{From: from, To: to, Cost: cost}, nil
}
