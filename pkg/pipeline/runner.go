package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/errors"
	"github.com/matzehuels/worldgen/pkg/observability"
	"github.com/matzehuels/worldgen/pkg/world"
)

// Runner executes configured runs. It holds no per-run state; one Runner may
// be reused across runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates cfg, generates every world and writes its artifacts.
// Cancellation is checked between worlds; a world that has started is
// finished. A write failure aborts the run and leaves earlier files in place.
func (r *Runner) Execute(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := world.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	result := &Result{
		RunID: uuid.NewString(),
		Seed:  seed,
	}
	logger := r.Logger.With("run", result.RunID[:8])
	logger.Debug("starting run", "worlds", len(cfg.Worlds), "seed", seed, "dir", cfg.OutputDir)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", cfg.OutputDir)
	}

	shared := world.NewRand(seed)
	opts := RenderOptions{DeclareAll: cfg.DeclareAll}

	for _, spec := range cfg.Worlds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		rng, worldSeed := shared, seed
		if spec.Seed != nil {
			worldSeed = *spec.Seed
			rng = world.NewRand(worldSeed)
		}

		hooks := observability.Pipeline()
		hooks.OnGenerateStart(ctx, spec.Name, string(spec.Kind), spec.Nodes)
		edges, err := Generate(rng, spec)
		hooks.OnGenerateComplete(ctx, spec.Name, len(edges), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", spec.Name, err)
		}

		w := world.New(spec.Name, edges)
		wr := WorldResult{
			Name:  spec.Name,
			Kind:  spec.Kind,
			Seed:  worldSeed,
			World: w,
			Stats: w.Stats(),
		}
		logger.Info("generated world",
			"name", spec.Name,
			"kind", spec.Kind,
			"nodes", wr.Stats.Nodes,
			"edges", wr.Stats.Edges)

		for _, format := range spec.Formats {
			path, err := WriteArtifact(ctx, cfg.OutputDir, w, format, opts)
			if err != nil {
				return nil, err
			}
			logger.Debug("wrote artifact", "path", path)
			wr.Files = append(wr.Files, path)
		}

		wr.Duration = time.Since(start)
		result.Worlds = append(result.Worlds, wr)
	}

	return result, nil
}

// Generate builds the edge list for one configured world.
func Generate(rng *rand.Rand, spec config.World) ([]world.Edge, error) {
	switch spec.Kind {
	case config.KindFull:
		return world.FullyConnected(rng, spec.Nodes), nil
	case config.KindSparse:
		return world.SparselyConnected(rng, spec.Nodes, spec.Ratio, spec.MinCost, spec.MaxCost)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown world kind %q", spec.Kind)
	}
}
