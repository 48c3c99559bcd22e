// Package config describes which worlds a run generates and where they go.
//
// The zero-argument run uses [Default]: a fully connected and a sparsely
// connected world of 100 nodes written to the working directory. A TOML file
// can replace that list:
//
//	output_dir = "worlds"
//	seed = 42
//
//	[[world]]
//	name = "tiny"
//	kind = "sparse"
//	nodes = 10
//	ratio = 0.2
//	min_cost = 1.0
//	max_cost = 5.0
//	formats = ["csv", "puml", "html"]
package config

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/worldgen/pkg/errors"
)

// Defaults for the zero-argument run.
const (
	DefaultNodes     = 100
	DefaultRatio     = 0.3
	DefaultMinCost   = 1.0
	DefaultMaxCost   = 10.0
	DefaultOutputDir = "."

	FullWorldName   = "full_world"
	SparseWorldName = "sparse_world"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatPUML = "puml"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatHTML = "html"
)

// ValidFormats is the set of output formats a world may request.
var ValidFormats = map[string]bool{
	FormatCSV: true, FormatPUML: true, FormatDOT: true, FormatSVG: true,
	FormatPDF: true, FormatPNG: true, FormatHTML: true,
}

// DefaultFormats are written when a world lists none.
var DefaultFormats = []string{FormatCSV, FormatPUML}

// Kind selects the generator for a world.
type Kind string

const (
	KindFull   Kind = "full"
	KindSparse Kind = "sparse"
)

// Config is a full run description.
type Config struct {
	OutputDir  string  `toml:"output_dir"`
	DeclareAll bool    `toml:"declare_all"` // declare destination-only nodes in .puml output
	Seed       *uint64 `toml:"seed"`        // seed for the shared source; nil draws one
	Worlds     []World `toml:"world"`
}

// World describes one generated world. Ratio, MinCost and MaxCost only apply
// to sparse worlds.
type World struct {
	Name    string   `toml:"name"`
	Kind    Kind     `toml:"kind"`
	Nodes   int      `toml:"nodes"`
	Ratio   float64  `toml:"ratio"`
	MinCost float64  `toml:"min_cost"`
	MaxCost float64  `toml:"max_cost"`
	Seed    *uint64  `toml:"seed"` // overrides the shared source for this world only
	Formats []string `toml:"formats"`
}

// Default returns the two-world configuration used when nothing is given.
func Default() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Worlds: []World{
			{
				Name:    FullWorldName,
				Kind:    KindFull,
				Nodes:   DefaultNodes,
				Formats: slices.Clone(DefaultFormats),
			},
			{
				Name:    SparseWorldName,
				Kind:    KindSparse,
				Nodes:   DefaultNodes,
				Ratio:   DefaultRatio,
				MinCost: DefaultMinCost,
				MaxCost: DefaultMaxCost,
				Formats: slices.Clone(DefaultFormats),
			},
		},
	}
}

// Load reads and validates a TOML config file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// document is the on-disk shape of a Config. Cost bounds are pointers so an
// explicit 0 stays distinct from an absent key.
type document struct {
	OutputDir  string          `toml:"output_dir"`
	DeclareAll bool            `toml:"declare_all"`
	Seed       *uint64         `toml:"seed"`
	Worlds     []worldDocument `toml:"world"`
}

type worldDocument struct {
	Name    string   `toml:"name"`
	Kind    Kind     `toml:"kind"`
	Nodes   int      `toml:"nodes"`
	Ratio   float64  `toml:"ratio"`
	MinCost *float64 `toml:"min_cost"`
	MaxCost *float64 `toml:"max_cost"`
	Seed    *uint64  `toml:"seed"`
	Formats []string `toml:"formats"`
}

// Parse decodes a TOML document, fills defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(r io.Reader) (*Config, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := doc.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// config converts the document and fills defaults for absent values.
// A sparse world without min_cost or max_cost gets the default bound.
func (d *document) config() *Config {
	cfg := &Config{
		OutputDir:  d.OutputDir,
		DeclareAll: d.DeclareAll,
		Seed:       d.Seed,
		Worlds:     make([]World, len(d.Worlds)),
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	for i, wd := range d.Worlds {
		w := World{
			Name:    wd.Name,
			Kind:    wd.Kind,
			Nodes:   wd.Nodes,
			Ratio:   wd.Ratio,
			Seed:    wd.Seed,
			Formats: wd.Formats,
		}
		if len(w.Formats) == 0 {
			w.Formats = slices.Clone(DefaultFormats)
		}
		if w.Kind == KindSparse {
			w.MinCost, w.MaxCost = DefaultMinCost, DefaultMaxCost
		}
		if wd.MinCost != nil {
			w.MinCost = *wd.MinCost
		}
		if wd.MaxCost != nil {
			w.MaxCost = *wd.MaxCost
		}
		cfg.Worlds[i] = w
	}
	return cfg
}

// Validate checks names, kinds, node counts, ratios and formats.
// Cost bounds are not compared; an inverted range is the caller's choice.
func (c *Config) Validate() error {
	if len(c.Worlds) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no worlds configured")
	}

	seen := make(map[string]bool, len(c.Worlds))
	for i, w := range c.Worlds {
		if err := errors.ValidateWorldName(w.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "world %d", i)
		}
		if seen[w.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate world name %q", w.Name)
		}
		seen[w.Name] = true

		if w.Nodes < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "world %q: nodes must not be negative, given %d", w.Name, w.Nodes)
		}
		switch w.Kind {
		case KindFull:
		case KindSparse:
			if err := errors.ValidateRatio(w.Ratio); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "world %q", w.Name)
			}
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "world %q: kind must be %q or %q, given %q", w.Name, KindFull, KindSparse, w.Kind)
		}
		if err := errors.ValidateFormats(w.Formats, ValidFormats); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "world %q", w.Name)
		}
	}
	return nil
}
