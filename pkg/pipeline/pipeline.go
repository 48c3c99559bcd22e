// Package pipeline runs the generate → write pipeline for worldgen.
//
// Both the zero-argument run and the generate command go through a [Runner],
// so file naming, draw order and logging stay the same no matter how a run
// was configured.
//
// # Stages
//
//  1. Generate: build each configured world from the shared random source
//     (or the world's own seed, when it has one)
//  2. Write: emit one artifact per requested format into the output directory
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, config.Default())
//	if err != nil {
//	    return err
//	}
//	for _, w := range result.Worlds {
//	    fmt.Println(w.Name, w.Files)
//	}
//
// # Reproducibility
//
// Worlds without their own seed draw from one shared source in config order.
// Re-running with [Result.Seed] reproduces every such world exactly, provided
// the world list is unchanged.
package pipeline

import (
	"time"

	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/world"
)

// Result describes a completed run.
type Result struct {
	RunID  string        // unique per Execute call
	Seed   uint64        // seed of the shared random source
	Worlds []WorldResult // in config order
}

// WorldResult describes one generated world and the files written for it.
type WorldResult struct {
	Name     string
	Kind     config.Kind
	Seed     uint64 // seed of the source this world drew from
	World    *world.World
	Stats    world.Stats
	Files    []string // in format order
	Duration time.Duration
}
