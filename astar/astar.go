package astar

import (
	"fmt"
	"math"
)

// Search returns a least-cost path from source to target.
//
// weight prices each relaxation with the previous edge in context; heuristic
// estimates the remaining cost (nil means ZeroHeuristic).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weight must be non-nil (ErrNilWeight).
//  3. g must contain source and target (ErrNodeNotFound).
//
// If source == target the result is the single-node path with zero cost and
// no callback is invoked.
//
// Failures:
//
//   - ErrNoPath: the frontier emptied before the target was finalized.
//   - ErrExpansionLimit: WithMaxExpansions bound reached.
//   - ErrInvalidCost: WithCostValidation found a bad weight.
//   - errors from g.Successors, wrapped.
//
// On failure the returned Result carries only Expanded.
func Search[N comparable](
	g Graph[N],
	source, target N,
	weight WeightFunc[N],
	heuristic Heuristic[N],
	opts ...Option,
) (Result[N], error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators and endpoints
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}
	if weight == nil {
		return Result[N]{}, ErrNilWeight
	}
	if !g.HasNode(source) {
		return Result[N]{}, fmt.Errorf("%w: source %v", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return Result[N]{}, fmt.Errorf("%w: target %v", ErrNodeNotFound, target)
	}
	if heuristic == nil {
		heuristic = ZeroHeuristic[N]
	}

	// 3) Trivial path: no relaxation, no callbacks
	if source == target {
		return Result[N]{Path: []N{source}}, nil
	}

	r := &runner[N]{
		g:         g,
		source:    source,
		target:    target,
		weight:    weight,
		heuristic: heuristic,
		options:   cfg,
		frontier:  newFrontier[N](),
		settled:   make(map[N]settled[N]),
		enqueued:  make(map[N]queued),
	}
	r.init()
	if err := r.process(); err != nil {
		return Result[N]{Expanded: r.expanded}, err
	}

	return r.result(), nil
}

// PathLength runs Search and returns the cost of the found path, obtained by
// re-evaluating weight along its edges (see EdgesCost).
func PathLength[N comparable](
	g Graph[N],
	source, target N,
	weight WeightFunc[N],
	heuristic Heuristic[N],
	opts ...Option,
) (float64, error) {
	res, err := Search(g, source, target, weight, heuristic, opts...)
	if err != nil {
		return 0, err
	}

	return EdgesCost(g, res.Edges, weight), nil
}

// EdgesCost sums weight over a walk, passing nil as the previous edge of the
// first step and edges[i-1] for every later step.
func EdgesCost[N comparable](g Graph[N], edges []Edge[N], weight WeightFunc[N]) float64 {
	var total float64
	var prev *Edge[N]
	for i := range edges {
		total += weight(g, prev, edges[i])
		prev = &edges[i]
	}

	return total
}

// settled is a best-cost ledger record. via is nil for the source.
type settled[N comparable] struct {
	acc float64
	via *Edge[N]
}

// queued is an enqueued-cost ledger record: the best accumulated cost of a
// live frontier entry and the node's cached heuristic value.
type queued struct {
	acc float64
	h   float64
}

// runner holds the mutable state for a single Search execution.
type runner[N comparable] struct {
	g         Graph[N]
	source    N
	target    N
	weight    WeightFunc[N]
	heuristic Heuristic[N]
	options   Options

	frontier *frontier[N]
	settled  map[N]settled[N] // finalized nodes
	enqueued map[N]queued     // nodes with a pushed entry
	expanded int
}

// init pushes the source with zero accumulated cost and no incoming edge.
func (r *runner[N]) init() {
	h := r.heuristic(r.source, r.target)
	r.enqueued[r.source] = queued{acc: 0, h: h}
	r.frontier.push(&entry[N]{estimate: h, acc: 0, node: r.source})
}

// process is the main loop: pop the best entry, drop it if stale, finalize
// it, stop at the target, otherwise relax its outgoing edges.
func (r *runner[N]) process() error {
	for {
		it, ok := r.frontier.pop()
		if !ok {
			return fmt.Errorf("%w: %v not reachable from %v", ErrNoPath, r.target, r.source)
		}

		// Stale unless strictly cheaper than the finalized record.
		if s, done := r.settled[it.node]; done && !(it.acc < s.acc) {
			continue
		}

		if limit := r.options.MaxExpansions; limit > 0 && r.expanded >= limit {
			return fmt.Errorf("%w: %d nodes finalized", ErrExpansionLimit, r.expanded)
		}

		r.settled[it.node] = settled[N]{acc: it.acc, via: it.via}
		r.expanded++

		if it.node == r.target {
			return nil
		}

		if err := r.relax(it); err != nil {
			return err
		}
	}
}

// relax prices every edge leaving it.node with it.via as the previous edge
// and pushes improved routes to non-finalized neighbors.
func (r *runner[N]) relax(it *entry[N]) error {
	succ, err := r.g.Successors(it.node)
	if err != nil {
		return fmt.Errorf("astar: successors of %v: %w", it.node, err)
	}

	for _, cur := range succ {
		cost := r.weight(r.g, it.via, cur)
		if r.options.ValidateCosts && !validCost(cost) {
			return fmt.Errorf("%w: edge %v→%v cost=%g", ErrInvalidCost, cur.From, cur.To, cost)
		}
		cand := it.acc + cost

		v := cur.To
		if _, done := r.settled[v]; done {
			continue
		}

		q, seen := r.enqueued[v]
		if seen {
			if !(cand < q.acc) {
				continue
			}
		} else {
			q.h = r.heuristic(v, r.target)
		}
		q.acc = cand
		r.enqueued[v] = q

		via := cur
		r.frontier.push(&entry[N]{
			estimate: cand + q.h,
			acc:      cand,
			node:     v,
			via:      &via,
		})
	}

	return nil
}

// result walks incoming edges back from the target through the ledger.
func (r *runner[N]) result() Result[N] {
	var edges []Edge[N]
	node := r.target
	// A walk longer than the ledger means a cycle from undefined costs.
	for steps := 0; steps <= len(r.settled); steps++ {
		s := r.settled[node]
		if s.via == nil {
			break
		}
		edges = append(edges, *s.via)
		node = s.via.From
	}

	// reverse edges
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	path := make([]N, 0, len(edges)+1)
	path = append(path, r.source)
	for _, e := range edges {
		path = append(path, e.To)
	}

	return Result[N]{
		Path:     path,
		Edges:    edges,
		Cost:     r.settled[r.target].acc,
		Expanded: r.expanded,
	}
}

func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}
