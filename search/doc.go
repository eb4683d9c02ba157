// Package search implements Dijkstra's shortest-path algorithm over an
// abstract, lazily evaluated node space.
//
// Unlike a graph-bound solver, Search never sees a container: the caller
// supplies a successor function (node → reachable neighbors with
// non-negative costs) and a goal predicate, and gets back the cheapest
// path from the start to the first goal node reached, or ErrNoPath. Any
// comparable node type works — grid coordinates, state-machine states,
// graph handles — because discovered nodes key a map.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the explored region, using a binary
//     min-heap frontier with lazy decrease-key (duplicates pushed, stale
//     entries skipped on extraction).
//   - Space: O(V + E) for the discovered-state map and heap.
//
// Determinism: the heap orders by (cost, discovery sequence), so among
// equal-cost frontier nodes the earliest-discovered one is expanded first.
// Given a stable successor function, results are fully deterministic.
//
// Termination is guaranteed when the reachable node set is finite: each
// iteration either reaches the goal or permanently visits one new node.
// An infinite reachable space with no reachable goal does not terminate;
// bounding such searches is the caller's job (see WithMaxCost).
//
// Negative costs void all correctness guarantees and are not validated:
// a lazy successor function cannot be pre-scanned without materializing
// the very space this package exists to avoid materializing.
package search
