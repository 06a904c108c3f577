package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/edgestar/core"
)

// CoreGraph exposes a *core.Graph as a Graph[string].
//
// Every successor edge carries the core edge ID in Key, so parallel edges
// stay distinguishable. Undirected edges are oriented away from the queried
// vertex.
type CoreGraph struct {
	g *core.Graph
}

// NewCoreGraph wraps g. The wrapper does not copy g; callers must not mutate
// g while a search runs.
func NewCoreGraph(g *core.Graph) *CoreGraph {
	return &CoreGraph{g: g}
}

// Core returns the wrapped graph.
func (cg *CoreGraph) Core() *core.Graph { return cg.g }

// HasNode reports whether the vertex exists.
func (cg *CoreGraph) HasNode(id string) bool {
	if cg == nil || cg.g == nil {
		return false
	}

	return cg.g.HasVertex(id)
}

// Successors lists the edges leaving id in core insertion order.
func (cg *CoreGraph) Successors(id string) ([]Edge[string], error) {
	nbs, err := cg.g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]Edge[string], 0, len(nbs))
	for _, e := range nbs {
		to, ok := e.Step(id)
		if !ok {
			continue
		}
		out = append(out, Edge[string]{From: id, To: to, Key: e.ID})
	}

	return out, nil
}

// Lookup returns the core edge behind e. With an empty Key the first edge
// traversable From → To is returned.
//
// Errors: core.ErrEdgeNotFound when no such edge exists.
func (cg *CoreGraph) Lookup(e Edge[string]) (*core.Edge, error) {
	if e.Key != "" {
		ce, err := cg.g.GetEdge(e.Key)
		if err != nil {
			return nil, err
		}
		if to, ok := ce.Step(e.From); !ok || to != e.To {
			return nil, fmt.Errorf("%w: %s does not lead %s→%s", core.ErrEdgeNotFound, e.Key, e.From, e.To)
		}

		return ce, nil
	}

	nbs, err := cg.g.Neighbors(e.From)
	if err != nil {
		return nil, err
	}
	for _, ce := range nbs {
		if to, ok := ce.Step(e.From); ok && to == e.To {
			return ce, nil
		}
	}

	return nil, fmt.Errorf("%w: %s→%s", core.ErrEdgeNotFound, e.From, e.To)
}

// WeightBy returns a previous-edge-agnostic weight reading the named
// attribute. "" and "weight" read core.Edge.Weight (1 on unweighted graphs);
// any other name reads core.Edge.Attrs and counts a missing attribute as 1.
// An edge that cannot be looked up costs +Inf.
func (cg *CoreGraph) WeightBy(attr string) WeightFunc[string] {
	return Static(func(e Edge[string]) float64 {
		return cg.attr(e, attr)
	})
}

// RatioWeightBy returns a rate-of-change weight: the attribute of cur divided
// by the attribute of prev, or the attribute of cur itself for edges leaving
// the source.
func (cg *CoreGraph) RatioWeightBy(attr string) WeightFunc[string] {
	return func(_ Graph[string], prev *Edge[string], cur Edge[string]) float64 {
		w := cg.attr(cur, attr)
		if prev == nil {
			return w
		}

		return w / cg.attr(*prev, attr)
	}
}

func (cg *CoreGraph) attr(e Edge[string], attr string) float64 {
	ce, err := cg.Lookup(e)
	if err != nil {
		return math.Inf(1)
	}
	if attr == "" || attr == "weight" {
		if !cg.g.Weighted() {
			return 1
		}

		return ce.Weight
	}
	if v, ok := ce.Attr(attr); ok {
		return v
	}

	return 1
}
