package graph_test

import (
	"testing"

	"github.com/mlevan/wayfarer/graph"
)

// BenchmarkAddNode measures arena append throughput.
func BenchmarkAddNode(b *testing.B) {
	g := graph.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddNode(i)
	}
}

// BenchmarkAddEdge_Star measures edge insertion fanning out of one hub,
// the worst case for the duplicate-check scan.
func BenchmarkAddEdge_Star(b *testing.B) {
	g := graph.New[int, int](graph.WithDirected())
	hub := g.AddNode(0)
	spokes := make([]graph.NodeID, b.N)
	for i := range spokes {
		spokes[i] = g.AddNode(i + 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.AddEdge(spokes[i], hub, i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighborWeights measures dereferenced adjacency enumeration on
// a node of fixed degree.
func BenchmarkNeighborWeights(b *testing.B) {
	const degree = 64
	g := graph.New[int, int](graph.WithDirected())
	hub := g.AddNode(0)
	for i := 0; i < degree; i++ {
		id := g.AddNode(i + 1)
		if _, err := g.AddEdge(hub, id, i); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if w := g.NeighborWeights(hub); len(w) != degree {
			b.Fatalf("unexpected degree %d", len(w))
		}
	}
}
