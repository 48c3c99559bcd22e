package world_test

import (
	"fmt"

	"github.com/matzehuels/worldgen/pkg/world"
)

func ExampleFullyConnected() {
	edges := world.FullyConnected(world.NewRand(42), 4)

	fmt.Println("Edges:", len(edges))
	fmt.Println("First:", edges[0].From, "->", edges[0].To)
	fmt.Println("Last:", edges[len(edges)-1].From, "->", edges[len(edges)-1].To)
	// Output:
	// Edges: 12
	// First: 0 -> 1
	// Last: 3 -> 2
}

func ExampleSparselyConnected() {
	edges, err := world.SparselyConnected(world.NewRand(42), 10, 0.3, 1.0, 10.0)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := world.New("sparse_world", edges)
	fmt.Println("Nodes:", w.NodeCount())
	fmt.Println("Edges:", w.EdgeCount())
	// Output:
	// Nodes: 10
	// Edges: 50
}

func ExampleSparselyConnected_invalidRatio() {
	_, err := world.SparselyConnected(world.NewRand(1), 10, 1.5, 1.0, 10.0)
	fmt.Println(err)
	// Output:
	// INVALID_INPUT: connectivity ratio must be bounded between [0, 1], given 1.5
}

func ExampleWorld_Sources() {
	w := world.New("demo", []world.Edge{
		{From: 0, To: 1, Cost: 2.5},
		{From: 1, To: 2, Cost: 3.0},
	})

	fmt.Println("Sources:", w.Sources())
	fmt.Println("Nodes:", w.Nodes())
	// Output:
	// Sources: [0 1]
	// Nodes: [0 1 2]
}
