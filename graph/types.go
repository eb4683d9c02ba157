// Package graph defines handle types, adjacency entries, construction
// options, and sentinel errors for the arena graph container.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrInvalidHandle indicates a node handle that was not issued by this
	// graph (out of range for its storage). Returned by AddEdge; indexed
	// accessors panic instead, see package doc.
	ErrInvalidHandle = errors.New("graph: handle does not reference a node in this graph")
)

// NodeID is an opaque handle for a stored node. Two NodeIDs are equal iff
// they reference the same storage slot. Handles are stable for the lifetime
// of the graph that issued them; they carry no meaning across graphs.
type NodeID int

// EdgeID is an opaque handle for a stored edge payload. Same equality and
// stability semantics as NodeID, in an independent index space.
type EdgeID int

// Arc is a single adjacency entry: the neighbor reached and the edge
// traversed to reach it.
type Arc struct {
	// To is the neighbor node handle.
	To NodeID

	// Edge is the handle of the connecting edge payload.
	Edge EdgeID
}

// Weight pairs a neighbor's node payload with the connecting edge payload.
// It is the dereferenced counterpart of Arc, returned by NeighborWeights.
type Weight[N, E any] struct {
	Node N
	Edge E
}

// options holds construction-time configuration applied by New.
type options struct {
	directed bool
}

// Option configures a Graph before creation.
type Option func(*options)

// WithDirected makes the graph directed: AddEdge(a, b, …) creates only the
// a→b adjacency entry, and EdgeConnecting never consults the reverse
// direction. The default is undirected.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}
