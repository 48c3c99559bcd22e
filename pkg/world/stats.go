package world

import "math"

// Stats summarizes the shape of a world.
type Stats struct {
	Nodes      int     // distinct node IDs touched by any edge
	Edges      int     // edges, parallel edges included
	MinCost    float64 // 0 when there are no edges
	MaxCost    float64
	MeanCost   float64
	Duplicates int // edges whose (From, To) pair already appeared earlier
	SelfLoops  int
	NoIncoming []int // nodes never seen as To, in first-appearance order
	NoOutgoing []int // nodes never seen as From, in first-appearance order
}

// Stats computes summary statistics over w's edges in a single pass.
func (w *World) Stats() Stats {
	s := Stats{Edges: len(w.Edges)}
	if len(w.Edges) == 0 {
		return s
	}

	type pair struct{ from, to int }
	seen := make(map[pair]struct{}, len(w.Edges))
	hasIn := make(map[int]bool)
	hasOut := make(map[int]bool)

	s.MinCost, s.MaxCost = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, e := range w.Edges {
		s.MinCost = min(s.MinCost, e.Cost)
		s.MaxCost = max(s.MaxCost, e.Cost)
		sum += e.Cost

		p := pair{e.From, e.To}
		if _, ok := seen[p]; ok {
			s.Duplicates++
		}
		seen[p] = struct{}{}

		if e.From == e.To {
			s.SelfLoops++
		}
		hasOut[e.From] = true
		hasIn[e.To] = true
	}
	s.MeanCost = sum / float64(len(w.Edges))

	nodes := w.Nodes()
	s.Nodes = len(nodes)
	for _, id := range nodes {
		if !hasIn[id] {
			s.NoIncoming = append(s.NoIncoming, id)
		}
		if !hasOut[id] {
			s.NoOutgoing = append(s.NoOutgoing, id)
		}
	}
	return s
}
