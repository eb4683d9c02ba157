// Package wayfarer is a small toolkit for single-source shortest-path
// search over lazily supplied node spaces, plus the arena-style graph
// container that most callers use to feed it.
//
// Two subpackages, deliberately decoupled:
//
//	graph/  — append-only node/edge arena addressed by opaque integer
//	          handles; directed or undirected adjacency in insertion order.
//	search/ — generic Dijkstra over a caller-supplied successor function
//	          and goal predicate; never touches graph/ directly.
//
// The search works with any comparable node type — a graph.NodeID, a grid
// coordinate struct, a state-machine state — as long as the caller can
// enumerate successors with non-negative costs. The container is merely the
// most common supplier of such successors:
//
//	g := graph.New[string, float64]()
//	a, b := g.AddNode("a"), g.AddNode("b")
//	g.AddEdge(a, b, 2.5)
//
//	res, err := search.Search(a,
//	    func(n graph.NodeID) []search.Step[graph.NodeID] {
//	        var steps []search.Step[graph.NodeID]
//	        for _, arc := range g.Neighbors(n) {
//	            steps = append(steps, search.Step[graph.NodeID]{Node: arc.To, Cost: g.Edge(arc.Edge)})
//	        }
//	        return steps
//	    },
//	    func(n graph.NodeID) bool { return n == b },
//	)
//
// Everything is single-threaded and in-process: no I/O, no locks, no
// goroutines. Callers serialize access themselves.
package wayfarer
