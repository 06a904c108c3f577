package astar_test

import (
	"errors"

	"github.com/katalvlaran/edgestar/astar"
	"github.com/katalvlaran/edgestar/core"
)

// scenarioGraph builds the directed graph in which S→A2→B2→C2→T is shortest
// by plain sum while S→A1→T wins once each weight is divided by the
// previous one.
func scenarioGraph() *astar.CoreGraph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A1", -2)
	_, _ = g.AddEdge("A1", "T", 7)
	_, _ = g.AddEdge("S", "A2", 1)
	_, _ = g.AddEdge("A2", "B2", 1)
	_, _ = g.AddEdge("B2", "C2", 1)
	_, _ = g.AddEdge("C2", "T", 1)

	return astar.NewCoreGraph(g)
}

// intGraph is a minimal Graph[int] with one weight per endpoint pair.
type intGraph struct {
	n   int
	out [][]astar.Edge[int]
	w   map[astar.Edge[int]]float64
	err error // returned by Successors when set
}

func newIntGraph(n int) *intGraph {
	return &intGraph{
		n:   n,
		out: make([][]astar.Edge[int], n),
		w:   make(map[astar.Edge[int]]float64),
	}
}

func (g *intGraph) add(from, to int, w float64) {
	e := astar.Edge[int]{From: from, To: to}
	g.out[from] = append(g.out[from], e)
	g.w[e] = w
}

func (g *intGraph) HasNode(n int) bool { return n >= 0 && n < g.n }

func (g *intGraph) Successors(n int) ([]astar.Edge[int], error) {
	if g.err != nil {
		return nil, g.err
	}

	return g.out[n], nil
}

func (g *intGraph) weight() astar.WeightFunc[int] {
	return astar.Static(func(e astar.Edge[int]) float64 { return g.w[e] })
}

var errBackend = errors.New("backend unavailable")

// weightCall records the arguments of one weight invocation.
type weightCall struct {
	prev *astar.Edge[string]
	cur  astar.Edge[string]
}

// recordingWeight wraps w and appends every invocation to calls.
func recordingWeight(w astar.WeightFunc[string], calls *[]weightCall) astar.WeightFunc[string] {
	return func(g astar.Graph[string], prev *astar.Edge[string], cur astar.Edge[string]) float64 {
		var p *astar.Edge[string]
		if prev != nil {
			cp := *prev
			p = &cp
		}
		*calls = append(*calls, weightCall{prev: p, cur: cur})

		return w(g, prev, cur)
	}
}
