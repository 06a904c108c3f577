// Package astar defines the collaborator interfaces, callback types,
// results, errors and options of the edge-context A* search.
package astar

import "errors"

// Sentinel errors returned by Search and PathLength.
var (
	// ErrNoPath indicates the target is not reachable from the source.
	// This is a normal outcome, not a programming error.
	ErrNoPath = errors.New("astar: no path between source and target")

	// ErrNodeNotFound indicates the source or target is absent from the graph.
	ErrNodeNotFound = errors.New("astar: node not found in graph")

	// ErrNilGraph indicates a nil Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilWeight indicates a nil WeightFunc was passed.
	ErrNilWeight = errors.New("astar: weight function is nil")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions
	// finalized nodes without reaching the target.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrInvalidCost indicates a negative, NaN or infinite edge cost was
	// observed while cost validation was enabled.
	ErrInvalidCost = errors.New("astar: invalid edge cost")

	// ErrBadMaxExpansions indicates a negative expansion limit.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Edge identifies one traversal step From → To.
//
// Key discriminates parallel edges between the same endpoints; graphs that
// identify edges by endpoint pair alone leave it empty. Two edges are equal
// iff all three fields are equal.
type Edge[N comparable] struct {
	From N
	To   N
	Key  string
}

// Graph is the read-only collaborator consumed by Search.
//
// Successors returns the edges leaving n, each with e.From == n, in a
// deterministic order. Search forwards these edges to the callbacks and never
// asks the graph for attributes itself.
type Graph[N comparable] interface {
	HasNode(n N) bool
	Successors(n N) ([]Edge[N], error)
}

// WeightFunc prices the traversal of cur given the edge prev that led into
// cur.From. prev is nil when cur leaves the source. prev must not be modified.
type WeightFunc[N comparable] func(g Graph[N], prev *Edge[N], cur Edge[N]) float64

// Heuristic estimates the remaining cost from node to target.
type Heuristic[N comparable] func(node, target N) float64

// ZeroHeuristic always returns 0, turning A* into Dijkstra's algorithm.
func ZeroHeuristic[N comparable](_, _ N) float64 { return 0 }

// Static adapts a cost that ignores the previous edge to a WeightFunc.
func Static[N comparable](cost func(e Edge[N]) float64) WeightFunc[N] {
	return func(_ Graph[N], _ *Edge[N], cur Edge[N]) float64 {
		return cost(cur)
	}
}

// Unit prices every edge at 1 (hop count).
func Unit[N comparable]() WeightFunc[N] {
	return func(Graph[N], *Edge[N], Edge[N]) float64 { return 1 }
}

// Result describes a found path.
//
// Path lists nodes from source to target inclusive; Edges lists the len(Path)-1
// edges taken. Cost is the accumulated cost of the target at finalization.
// Expanded counts finalized nodes, including the target.
type Result[N comparable] struct {
	Path     []N
	Edges    []Edge[N]
	Cost     float64
	Expanded int
}

// Options configures Search.
//
// MaxExpansions – stop with ErrExpansionLimit once this many nodes were
// finalized without reaching the target. 0 means unlimited.
//
// ValidateCosts – check every weight result and fail with ErrInvalidCost on
// negative, NaN or infinite values. Off by default.
type Options struct {
	MaxExpansions int
	ValidateCosts bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions bounds the number of finalized nodes.
// Panics with ErrBadMaxExpansions if n < 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithCostValidation enables the per-relaxation cost check.
func WithCostValidation() Option {
	return func(o *Options) {
		o.ValidateCosts = true
	}
}

// DefaultOptions returns unlimited expansions and no cost validation.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		ValidateCosts: false,
	}
}
