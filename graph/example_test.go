package graph_test

import (
	"fmt"

	"github.com/mlevan/wayfarer/graph"
)

// ExampleNew builds a small undirected network and inspects adjacency
// through the two enumeration views.
func ExampleNew() {
	g := graph.New[string, int]()
	oslo := g.AddNode("Oslo")
	bergen := g.AddNode("Bergen")
	trondheim := g.AddNode("Trondheim")

	g.AddEdge(oslo, bergen, 463)
	g.AddEdge(oslo, trondheim, 495)

	for _, arc := range g.Neighbors(oslo) {
		fmt.Println(g.Node(arc.To), g.Edge(arc.Edge))
	}
	// Output:
	// Bergen 463
	// Trondheim 495
}

// ExampleGraph_AddEdge shows the idempotent overwrite: re-adding an
// existing connection keeps the handle and replaces the payload.
func ExampleGraph_AddEdge() {
	g := graph.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	first, _ := g.AddEdge(a, b, 10)
	second, _ := g.AddEdge(a, b, 25)

	fmt.Println(first == second, g.Edge(first), g.EdgeCount())
	// Output: true 25 1
}

// ExampleGraph_EdgeConnecting demonstrates the undirected reverse lookup:
// a connection recorded from one endpoint is visible from the other.
func ExampleGraph_EdgeConnecting() {
	g := graph.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 7)

	if eid, ok := g.EdgeConnecting(b, a); ok {
		fmt.Println(g.Edge(eid))
	}
	// Output: 7
}
