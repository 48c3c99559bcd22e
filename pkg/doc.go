// Package pkg holds the libraries behind the worldgen command.
//
// # Overview
//
// Worldgen produces synthetic weighted directed graphs ("worlds") used as
// input for routing exercises. The packages split along the data flow:
//
//  1. [world] - edge model, generators, statistics and the cost matrix
//  2. [io] - CSV edge-list export and import
//  3. [render] - PlantUML, Graphviz and ECharts diagrams
//  4. [pipeline] - orchestration (generate → write) driven by a [config]
//
// Supporting packages: [errors] (coded errors), [observability] (pipeline
// hooks and Prometheus metrics), [cache] (layout cache) and [buildinfo].
//
// # Architecture
//
//	config.Config
//	     ↓
//	pipeline.Runner ── world.FullyConnected / world.SparselyConnected
//	     ↓
//	io.ExportCSV, plantuml.Export, nodelink, echarts
//	     ↓
//	<name>.csv, <name>.puml, ...
//
// # Quick Start
//
//	rng := world.NewRand(42)
//	edges, err := world.SparselyConnected(rng, 100, 0.3, 1, 10)
//	if err != nil {
//	    return err
//	}
//	if err := io.ExportCSV("sparse_world.csv", edges); err != nil {
//	    return err
//	}
//	return plantuml.Export("sparse_world.puml", edges, plantuml.Options{})
//
// [world]: github.com/matzehuels/worldgen/pkg/world
// [io]: github.com/matzehuels/worldgen/pkg/io
// [render]: github.com/matzehuels/worldgen/pkg/render
// [pipeline]: github.com/matzehuels/worldgen/pkg/pipeline
// [config]: github.com/matzehuels/worldgen/pkg/config
// [errors]: github.com/matzehuels/worldgen/pkg/errors
// [observability]: github.com/matzehuels/worldgen/pkg/observability
// [cache]: github.com/matzehuels/worldgen/pkg/cache
// [buildinfo]: github.com/matzehuels/worldgen/pkg/buildinfo
package pkg
