// Package search defines the successor/goal function types, the result
// type, configuration options, and sentinel errors for the shortest-path
// search.
package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search and SearchTo.
var (
	// ErrNilSuccessors indicates a nil successor function was supplied.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilGoal indicates a nil goal predicate was supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNoPath indicates the search exhausted every reachable node (or
	// every node within MaxCost) without satisfying the goal predicate.
	// Absence of a path is an expected outcome, not a failure mode; callers
	// branch on it with errors.Is.
	ErrNoPath = errors.New("search: no path to a goal node")

	// ErrBadMaxCost indicates WithMaxCost was given a negative or NaN cap.
	ErrBadMaxCost = errors.New("search: MaxCost must be a non-negative number")
)

// Step is one successor: the node reached and the cost of the edge taken.
// Cost must be ≥ 0; negative costs are undefined behavior (not validated).
type Step[T comparable] struct {
	Node T
	Cost float64
}

// SuccessorFunc enumerates the immediate successors of a node. It may be
// called more than once for the same node and must be stable across calls:
// the reachable set must not change mid-search.
type SuccessorFunc[T comparable] func(T) []Step[T]

// GoalFunc reports whether a node satisfies the search target. The first
// goal node extracted from the frontier ends the search.
type GoalFunc[T comparable] func(T) bool

// Result is a successful search outcome: the node sequence from the start
// to the goal node inclusive, and its total edge-cost sum. If the start
// itself satisfies the goal, Path is [start] and Cost is 0.
type Result[T comparable] struct {
	Path []T
	Cost float64
}

// Options configures the behavior of a search.
//
// MaxCost caps exploration: once the cheapest frontier entry exceeds it,
// the search stops and reports ErrNoPath. Must be ≥ 0. Default is +Inf
// (no cap).
type Options struct {
	MaxCost float64
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// WithMaxCost sets a cost cap on exploration. Nodes whose shortest
// distance from the start exceeds max are never expanded, so a goal lying
// beyond the cap yields ErrNoPath. Negative or NaN caps panic with
// ErrBadMaxCost: an invalid cap is a programming error, caught at
// configuration time.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no overrides are supplied:
// MaxCost = +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
