// Package graph provides an append-only, arena-style graph container:
// node and edge payloads live in indexed storage and are addressed by
// opaque integer handles (NodeID, EdgeID). It supports:
//
//   - Directed or undirected adjacency, fixed at construction
//   - Stable handles: indices are never reused or shifted (no deletion)
//   - Adjacency enumeration in insertion order, raw or dereferenced
//   - Idempotent AddEdge: re-adding an existing connection overwrites
//     the stored payload in place and returns the original handle
//
// The container is deliberately minimal. It carries no locks (callers
// serialize access), no weights of its own (edge payloads are whatever
// the caller stores), and no traversal logic — the search package
// consumes it only through caller-built closures.
package graph
