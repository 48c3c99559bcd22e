package io

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/world"
)

func TestWriteCSV(t *testing.T) {
	tenth := 0.1
	inexact := tenth + 0.2 // evaluated at run time: 0.30000000000000004

	tests := []struct {
		name  string
		edges []world.Edge
		want  string
	}{
		{
			name: "header only",
			want: "From,To,Cost\n",
		},
		{
			name:  "integral cost has no fraction",
			edges: []world.Edge{{From: 0, To: 1, Cost: 7}},
			want:  "From,To,Cost\n0,1,7\n",
		},
		{
			name: "full precision",
			edges: []world.Edge{
				{From: 3, To: 0, Cost: 2.5},
				{From: 0, To: 3, Cost: inexact},
			},
			want: "From,To,Cost\n3,0,2.5\n0,3,0.30000000000000004\n",
		},
		{
			name:  "parallel edges kept in order",
			edges: []world.Edge{{From: 1, To: 2, Cost: 1}, {From: 1, To: 2, Cost: 9}},
			want:  "From,To,Cost\n1,2,1\n1,2,9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, tt.edges); err != nil {
				t.Fatalf("WriteCSV() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteCSV() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	rng := world.NewRand(99)
	sparse, err := world.SparselyConnected(rng, 40, 0.3, 1, 10)
	if err != nil {
		t.Fatal(err)
	}

	inputs := map[string][]world.Edge{
		"full":   world.FullyConnected(rng, 12),
		"sparse": sparse,
		"extreme": {
			{From: 0, To: 1, Cost: math.SmallestNonzeroFloat64},
			{From: 1, To: 0, Cost: math.MaxFloat64},
			{From: 2, To: 2, Cost: 1.0 / 3.0},
		},
	}

	for name, edges := range inputs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, edges); err != nil {
				t.Fatalf("WriteCSV() error = %v", err)
			}
			got, err := ReadCSV(&buf)
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if !slices.Equal(got, edges) {
				t.Errorf("round trip mismatch: got %d edges, want %d", len(got), len(edges))
			}
		})
	}
}

func TestCSVRoundTripBySplitting(t *testing.T) {
	edges, err := world.SparselyConnected(world.NewRand(3), 15, 0.4, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, edges); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "From,To,Cost" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines)-1 != len(edges) {
		t.Fatalf("got %d rows, want %d", len(lines)-1, len(edges))
	}
	for i, line := range lines[1:] {
		parts := strings.Split(line, ",")
		e, err := parseEdge(parts)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if e != edges[i] {
			t.Errorf("row %d = %+v, want %+v", i, e, edges[i])
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing header", "0,1,2\n"},
		{"wrong header", "A,B,C\n0,1,2\n"},
		{"too few fields", "From,To,Cost\n0,1\n"},
		{"too many fields", "From,To,Cost\n0,1,2,3\n"},
		{"bad from", "From,To,Cost\nx,1,2\n"},
		{"bad to", "From,To,Cost\n0,y,2\n"},
		{"bad cost", "From,To,Cost\n0,1,cheap\n"},
		{"float node id", "From,To,Cost\n0.5,1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadCSV() expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadCSV() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestReadCSVLenient(t *testing.T) {
	input := "from,to,cost\n0, 1, 2.5\n\n1,2,3\n"
	got, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	want := []world.Edge{{From: 0, To: 1, Cost: 2.5}, {From: 1, To: 2, Cost: 3}}
	if !slices.Equal(got, want) {
		t.Errorf("ReadCSV() = %v, want %v", got, want)
	}
}

func TestExportImportCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse_world.csv")

	edges := []world.Edge{{From: 0, To: 1, Cost: 2.5}, {From: 1, To: 0, Cost: 4}}
	if err := ExportCSV(path, edges); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	w, err := ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if w.Name != "sparse_world" {
		t.Errorf("Name = %q, want %q", w.Name, "sparse_world")
	}
	if !slices.Equal(w.Edges, edges) {
		t.Errorf("Edges = %v, want %v", w.Edges, edges)
	}
}

func TestExportCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.csv")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ExportCSV(path, nil); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "From,To,Cost\n" {
		t.Errorf("file = %q, want header only", data)
	}
}

func TestExportCSVUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "world.csv")
	err := ExportCSV(path, nil)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ExportCSV() error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func TestImportCSVNotFound(t *testing.T) {
	_, err := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportCSV() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}
