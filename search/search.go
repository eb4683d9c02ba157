package search

import "container/heap"

// Search computes the minimum-cost path from start to the first node
// satisfying goal, expanding the space lazily through next.
//
// Returns:
//
//   - Result: the path in start→goal order and its total cost.
//   - err: ErrNilSuccessors / ErrNilGoal on invalid input, ErrNoPath when
//     every reachable node (or every node within MaxCost) fails the goal.
//
// The goal predicate is tested when a node is extracted from the frontier,
// i.e. once its shortest distance is final — so the returned path is
// optimal among all paths to all goal nodes, not just the first goal node
// discovered. If goal(start) holds, the result is Path=[start], Cost=0.
//
// Complexity: O((V + E) log V) time, O(V + E) space over the explored
// region.
func Search[T comparable](start T, next SuccessorFunc[T], goal GoalFunc[T], opts ...Option) (Result[T], error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the supplied functions before touching the space.
	if next == nil {
		return Result[T]{}, ErrNilSuccessors
	}
	if goal == nil {
		return Result[T]{}, ErrNilGoal
	}

	// 3) Initialize per-invocation state and run the main loop. Nothing is
	//    shared across calls.
	r := &runner[T]{
		next:    next,
		goal:    goal,
		options: cfg,
		state:   make(map[T]*nodeState[T]),
		visited: make(map[T]bool),
	}

	return r.run(start)
}

// SearchTo is a convenience wrapper over Search for the common case of a
// single fixed target node: goal is equality with target.
func SearchTo[T comparable](start, target T, next SuccessorFunc[T], opts ...Option) (Result[T], error) {
	return Search(start, next, func(n T) bool { return n == target }, opts...)
}

// nodeState is the per-discovered-node record: current best cost from the
// start, the predecessor on that path, and the discovery sequence number
// used for deterministic tie-breaking. hasParent distinguishes the start
// (no predecessor) from everything else during path reconstruction.
type nodeState[T comparable] struct {
	cost      float64
	parent    T
	hasParent bool
	seq       uint64
}

// runner holds the mutable state for a single Search execution.
type runner[T comparable] struct {
	next    SuccessorFunc[T]
	goal    GoalFunc[T]
	options Options

	state   map[T]*nodeState[T] // discovered node → best-known record
	visited map[T]bool          // node finalized, excluded from selection and relaxation
	pq      frontier[T]         // min-heap of (cost, discovery seq), lazy decrease-key
	seq     uint64              // discovery counter
}

// run seeds the frontier with start at cost 0 and repeatedly extracts the
// cheapest unvisited node until a goal node surfaces or the frontier is
// exhausted.
func (r *runner[T]) run(start T) (Result[T], error) {
	r.state[start] = &nodeState[T]{seq: r.nextSeq()}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem[T]{node: start})

	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		item := heap.Pop(&r.pq).(*frontierItem[T])
		curr := item.node

		// 2) Stale entry from lazy decrease-key: already finalized, skip.
		if r.visited[curr] {
			continue
		}

		// 3) Cost cap: the frontier minimum only grows, so once it exceeds
		//    MaxCost nothing satisfying the goal can still be reached in
		//    budget.
		if item.cost > r.options.MaxCost {
			break
		}

		// 4) Goal test on extraction — curr's cost is final here.
		if r.goal(curr) {
			return r.reconstruct(curr), nil
		}

		// 5) Finalize curr and relax its successors.
		r.visited[curr] = true
		r.relax(curr)
	}

	return Result[T]{}, ErrNoPath
}

// relax enumerates next(curr) and improves the record of every successor
// reachable more cheaply through curr. First discovery counts as an
// improvement over the implicit +Inf. Improved nodes are (re)pushed onto
// the frontier; the superseded heap entries linger and are skipped as
// stale on extraction.
func (r *runner[T]) relax(curr T) {
	base := r.state[curr].cost

	for _, step := range r.next(curr) {
		// Visited nodes are permanently finalized; never reconsidered.
		if r.visited[step.Node] {
			continue
		}

		candidate := base + step.Cost
		st, discovered := r.state[step.Node]
		if discovered && candidate >= st.cost {
			// Not strictly better. Equal-cost rediscoveries keep the first
			// predecessor, preserving discovery-order determinism.
			continue
		}
		if !discovered {
			st = &nodeState[T]{seq: r.nextSeq()}
			r.state[step.Node] = st
		}

		st.cost = candidate
		st.parent = curr
		st.hasParent = true

		// Lazy decrease-key: push a fresh entry carrying the node's
		// original discovery sequence, so an improved cost does not change
		// its position in tie-breaks.
		heap.Push(&r.pq, &frontierItem[T]{node: step.Node, cost: candidate, seq: st.seq})
	}
}

// reconstruct walks predecessor links from end back to the parentless
// start, then reverses into start→end order.
func (r *runner[T]) reconstruct(end T) Result[T] {
	path := []T{end}
	for st := r.state[end]; st.hasParent; st = r.state[st.parent] {
		path = append(path, st.parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result[T]{Path: path, Cost: r.state[end].cost}
}

// nextSeq returns the next discovery sequence number.
func (r *runner[T]) nextSeq() uint64 {
	s := r.seq
	r.seq++

	return s
}

// frontierItem is one heap entry: a node, the cost it was pushed with, and
// the node's discovery sequence for tie-breaking.
type frontierItem[T comparable] struct {
	node T
	cost float64
	seq  uint64
}

// frontier is a min-heap of *frontierItem ordered by (cost, discovery
// sequence) ascending. Superseded entries are not removed; they are
// filtered against the visited map on extraction.
type frontier[T comparable] []*frontierItem[T]

// Len returns the number of items in the heap.
func (f frontier[T]) Len() int { return len(f) }

// Less orders by cost ascending, breaking ties by earliest discovery.
func (f frontier[T]) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier[T]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x is a *frontierItem.
func (f *frontier[T]) Push(x any) { *f = append(*f, x.(*frontierItem[T])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[T]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
