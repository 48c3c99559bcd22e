package world

import (
	"math/rand/v2"

	"github.com/matzehuels/worldgen/pkg/errors"
)

// Cost bounds used by [FullyConnected].
const (
	FullMinCost = 1
	FullMaxCost = 10
)

// NewRand returns a PCG-backed source seeded from seed.
// The same seed always yields the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// RandomSeed draws a seed from the runtime's global generator.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// FullyConnected returns the complete directed graph on n nodes: one edge for
// every ordered pair (i, j) with i != j, in row-major order. Each cost is an
// integer drawn uniformly from [FullMinCost, FullMaxCost].
//
// n <= 1 yields an empty edge list.
func FullyConnected(rng *rand.Rand, n int) []Edge {
	if n <= 1 {
		return []Edge{}
	}
	edges := make([]Edge, 0, n*(n-1))
	for i := range n {
		for j := range n {
			if i == j {
				continue
			}
			cost := FullMinCost + rng.IntN(FullMaxCost-FullMinCost+1)
			edges = append(edges, Edge{From: i, To: j, Cost: float64(cost)})
		}
	}
	return edges
}

// SparselyConnected returns a directed multigraph on n nodes where every node
// has at least one incoming and one outgoing edge.
//
// For each node i, in order:
//  1. an edge (input -> i) from a uniformly chosen input != i
//  2. an edge (i -> output) to a uniformly chosen output != i
//  3. floor(n*ratio) edges (i -> d) to distinct nodes sampled without
//     replacement from [0, n); d may equal i
//
// Every cost is drawn independently and uniformly from [minCost, maxCost].
// Duplicate pairs are kept.
//
// ratio outside [0, 1] returns an INVALID_INPUT error before any draw. So
// does n == 1, which has no node other than 0 to connect to. minCost and
// maxCost are not checked against each other.
func SparselyConnected(rng *rand.Rand, n int, ratio, minCost, maxCost float64) ([]Edge, error) {
	if err := errors.ValidateRatio(ratio); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Edge{}, nil
	}
	if n == 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a sparse world needs at least 2 nodes, given %d", n)
	}

	k := int(float64(n) * ratio)
	edges := make([]Edge, 0, n*(2+k))
	pool := make([]int, n)
	cost := func() float64 { return uniform(rng, minCost, maxCost) }

	for i := range n {
		input := pickOther(rng, n, i)
		edges = append(edges, Edge{From: input, To: i, Cost: cost()})

		output := pickOther(rng, n, i)
		edges = append(edges, Edge{From: i, To: output, Cost: cost()})

		for _, d := range sample(rng, pool, k) {
			edges = append(edges, Edge{From: i, To: d, Cost: cost()})
		}
	}
	return edges, nil
}

// pickOther draws uniformly from [0, n) until the result differs from self.
func pickOther(rng *rand.Rand, n, self int) int {
	for {
		if id := rng.IntN(n); id != self {
			return id
		}
	}
}

// sample returns k distinct values from [0, len(pool)) using a partial
// Fisher-Yates shuffle. pool is reset on every call and the result aliases it.
func sample(rng *rand.Rand, pool []int, k int) []int {
	for i := range pool {
		pool[i] = i
	}
	k = min(k, len(pool))
	for i := range k {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// uniform returns a value in [lo, hi]. lo > hi is allowed and yields (hi, lo].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
