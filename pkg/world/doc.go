// Package world generates synthetic weighted directed graphs used as routing
// problem instances.
//
// # Overview
//
// A world is nothing more than a list of [Edge] values. There is no node
// registry: the node set is implied by the endpoints that appear in the edge
// list, so every node that should exist must be touched by at least one edge.
// [World.Sources] and [World.Nodes] recover the implied node sets.
//
// # Generators
//
// Two generators are provided:
//
//   - [FullyConnected]: every ordered pair of distinct nodes, integer costs 1..10
//   - [SparselyConnected]: one guaranteed in-edge and out-edge per node plus
//     floor(n*ratio) random out-edges, real costs in [minCost, maxCost]
//
// Both take an explicit *rand.Rand so a run can be reproduced from its seed:
//
//	rng := world.NewRand(42)
//	full := world.FullyConnected(rng, 100)
//	sparse, err := world.SparselyConnected(rng, 100, 0.3, 1, 10)
//
// Draw order is part of the contract. Reordering draws inside a generator
// changes every world produced from a given seed.
//
// # Multigraphs
//
// The sparse generator may emit the same (from, to) pair more than once, and
// its random out-edges may loop back to the source node. Both are kept.
// [Matrix] collapses parallel edges when a dense view is needed.
//
// # Concurrency
//
// Generators are not safe for concurrent use with a shared *rand.Rand.
// World values are read-only after construction and safe to share.
package world
