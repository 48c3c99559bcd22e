package world

import "math"

// Edge is one directed, weighted traversal option between two nodes.
// From == To is not rejected here; generators decide whether loops occur.
type Edge struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Cost float64 `json:"cost"`
}

// World is a named edge list. The node set is implied by the edges.
type World struct {
	Name  string
	Edges []Edge
}

// New creates a World from a name and an edge list. The slice is not copied.
func New(name string, edges []Edge) *World {
	return &World{Name: name, Edges: edges}
}

// EdgeCount returns the number of edges, parallel edges included.
func (w *World) EdgeCount() int { return len(w.Edges) }

// Sources returns the unique From values in first-appearance order.
func (w *World) Sources() []int {
	return uniqueIDs(w.Edges, false)
}

// Nodes returns the unique union of From and To values in first-appearance
// order. For each edge From is visited before To.
func (w *World) Nodes() []int {
	return uniqueIDs(w.Edges, true)
}

// NodeCount returns the number of distinct node IDs touched by any edge.
func (w *World) NodeCount() int { return len(w.Nodes()) }

func uniqueIDs(edges []Edge, withTargets bool) []int {
	seen := make(map[int]struct{})
	var out []int
	add := func(id int) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, e := range edges {
		add(e.From)
		if withTargets {
			add(e.To)
		}
	}
	return out
}

// MatrixSize returns the side length of the matrix [Matrix] builds for
// edges: one more than the largest node ID, or 0 without edges. It depends
// on the IDs, not on how many distinct nodes there are.
func MatrixSize(edges []Edge) int {
	size := 0
	for _, e := range edges {
		size = max(size, e.From+1, e.To+1)
	}
	return size
}

// Matrix returns a dense n×n cost matrix where n is one more than the largest
// node ID. Missing pairs are +Inf and the diagonal is 0 unless a self loop
// supplies a cost. When parallel edges exist the cheapest one wins.
// Negative node IDs are skipped.
func Matrix(edges []Edge) [][]float64 {
	size := MatrixSize(edges)

	m := make([][]float64, size)
	for i := range m {
		m[i] = make([]float64, size)
		for j := range m[i] {
			if i != j {
				m[i][j] = math.Inf(1)
			}
		}
	}

	loops := make(map[int]bool)
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			continue
		}
		if e.From == e.To && !loops[e.From] {
			loops[e.From] = true
			m[e.From][e.To] = e.Cost
			continue
		}
		if e.Cost < m[e.From][e.To] {
			m[e.From][e.To] = e.Cost
		}
	}
	return m
}
