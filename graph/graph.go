package graph

// nodeRecord is one arena slot: the caller's payload plus the outgoing
// adjacency list in insertion order.
type nodeRecord[N any] struct {
	payload N
	adj     []Arc
}

// Graph is an append-only in-memory graph parameterized over the node
// payload type N and the edge payload type E.
//
// Storage is two arenas (node records, edge payloads) addressed by integer
// handles. Nothing is ever deleted, so handles stay valid for the graph's
// lifetime. The directed flag is fixed at construction.
//
// Graph carries no internal synchronization; concurrent mutation, or
// mutation while a reader iterates adjacency, must be serialized by the
// caller.
type Graph[N, E any] struct {
	directed bool
	nodes    []nodeRecord[N]
	edges    []E
}

// New creates an empty Graph with the given options.
// By default the graph is undirected.
// Complexity: O(1).
func New[N, E any](opts ...Option) *Graph[N, E] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N, E]{directed: o.directed}
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph[N, E]) Directed() bool { return g.directed }

// NodeCount returns the number of stored nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored edge payloads.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// AddNode appends a node with the given payload and an empty adjacency
// list, and returns its handle. The handle's index equals the node count
// before insertion. AddNode never fails.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(payload N) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, nodeRecord[N]{payload: payload})

	return id
}

// AddEdge connects from→to with the given payload.
//
// If an edge already connects the pair (per the EdgeConnecting lookup rule,
// so in an undirected graph either recorded direction matches), its payload
// is overwritten in place and the existing handle is returned — no new
// adjacency entry, no new edge record. Otherwise the payload is appended,
// an adjacency entry (to, newID) is appended to from's node, and the new
// handle is returned.
//
// Both handles must have been issued by AddNode on this graph; otherwise
// AddEdge returns ErrInvalidHandle.
// Complexity: O(deg(from)) (O(deg(from)+deg(to)) undirected) for the
// duplicate check, O(1) amortized for the insertion.
func (g *Graph[N, E]) AddEdge(from, to NodeID, payload E) (EdgeID, error) {
	// 1) Validate handles before any indexed access.
	if !g.validNode(from) || !g.validNode(to) {
		return 0, ErrInvalidHandle
	}

	// 2) Existing connection: overwrite payload, keep identity.
	if eid, ok := g.EdgeConnecting(from, to); ok {
		g.edges[eid] = payload

		return eid, nil
	}

	// 3) New connection: append payload and the forward adjacency entry.
	//    Undirected traversal of the reverse direction is resolved at
	//    lookup time by EdgeConnecting, not by mirroring the entry.
	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, payload)
	g.nodes[from].adj = append(g.nodes[from].adj, Arc{To: to, Edge: eid})

	return eid, nil
}

// EdgeConnecting returns the handle of the edge connecting a→b, if any.
//
// It scans a's adjacency list for b in insertion order. On a miss in a
// directed graph it reports not found. On a miss in an undirected graph it
// falls back to scanning b's adjacency list for a, so a connection recorded
// as AddEdge(a, b, …) is found from either endpoint.
//
// Both handles must be valid for this graph; out-of-range handles panic.
// Complexity: O(deg(a)) directed, O(deg(a)+deg(b)) undirected worst case.
func (g *Graph[N, E]) EdgeConnecting(a, b NodeID) (EdgeID, bool) {
	for _, arc := range g.nodes[a].adj {
		if arc.To == b {
			return arc.Edge, true
		}
	}
	if g.directed {
		return 0, false
	}
	for _, arc := range g.nodes[b].adj {
		if arc.To == a {
			return arc.Edge, true
		}
	}

	return 0, false
}

// Node returns the payload stored for the given handle.
// Out-of-range handles are a programming error and panic.
// Complexity: O(1).
func (g *Graph[N, E]) Node(id NodeID) N { return g.nodes[id].payload }

// SetNode overwrites the payload stored for the given handle.
// Out-of-range handles are a programming error and panic.
// Complexity: O(1).
func (g *Graph[N, E]) SetNode(id NodeID, payload N) { g.nodes[id].payload = payload }

// Edge returns the edge payload stored for the given handle.
// Out-of-range handles are a programming error and panic.
// Complexity: O(1).
func (g *Graph[N, E]) Edge(id EdgeID) E { return g.edges[id] }

// SetEdge overwrites the edge payload stored for the given handle.
// Out-of-range handles are a programming error and panic.
// Complexity: O(1).
func (g *Graph[N, E]) SetEdge(id EdgeID, payload E) { g.edges[id] = payload }

// Neighbors returns the adjacency list of the given node in insertion
// order. The slice is a copy; callers may keep or mutate it freely.
//
// On an undirected graph the entries are the arcs recorded at insertion
// time — a connection added as AddEdge(a, b, …) appears in Neighbors(a),
// not Neighbors(b). Traversal code that needs both directions should
// mirror at insertion (add both a→b and b→a with the same payload) or use
// its own successor closure.
// Complexity: O(deg(id)) time and space.
func (g *Graph[N, E]) Neighbors(id NodeID) []Arc {
	src := g.nodes[id].adj
	out := make([]Arc, len(src))
	copy(out, src)

	return out
}

// NeighborWeights returns the adjacency list of the given node with
// handles dereferenced to payload values, in insertion order.
// Complexity: O(deg(id)) time and space.
func (g *Graph[N, E]) NeighborWeights(id NodeID) []Weight[N, E] {
	src := g.nodes[id].adj
	out := make([]Weight[N, E], len(src))
	for i, arc := range src {
		out[i] = Weight[N, E]{Node: g.nodes[arc.To].payload, Edge: g.edges[arc.Edge]}
	}

	return out
}

// validNode reports whether id was issued by AddNode on this graph.
func (g *Graph[N, E]) validNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
