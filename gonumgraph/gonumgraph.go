package gonumgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/edgestar/astar"
)

// ErrNodeNotFound indicates a node ID absent from the wrapped graph.
var ErrNodeNotFound = errors.New("gonumgraph: node not found")

// Graph adapts a gonum graph.Graph to astar.Graph[int64].
type Graph struct {
	g graph.Graph
}

// New wraps g. g must not be mutated while a search runs.
func New(g graph.Graph) *Graph {
	return &Graph{g: g}
}

// Gonum returns the wrapped graph.
func (a *Graph) Gonum() graph.Graph { return a.g }

// HasNode reports whether id is a node of the wrapped graph.
func (a *Graph) HasNode(id int64) bool {
	return a.g != nil && a.g.Node(id) != nil
}

// Successors lists edges from id, sorted by target ID, then line ID.
func (a *Graph) Successors(id int64) ([]astar.Edge[int64], error) {
	if !a.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	to := graph.NodesOf(a.g.From(id))
	sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })

	mg, multi := a.g.(graph.Multigraph)
	out := make([]astar.Edge[int64], 0, len(to))
	for _, n := range to {
		if !multi {
			out = append(out, astar.Edge[int64]{From: id, To: n.ID()})
			continue
		}
		lines := graph.LinesOf(mg.Lines(id, n.ID()))
		sort.Slice(lines, func(i, j int) bool { return lines[i].ID() < lines[j].ID() })
		for _, l := range lines {
			out = append(out, astar.Edge[int64]{From: id, To: n.ID(), Key: strconv.FormatInt(l.ID(), 10)})
		}
	}

	return out, nil
}

// Weight returns a previous-edge-agnostic weight read from the wrapped graph.
// Keyed edges of a graph.WeightedMultigraph use their line weight; otherwise
// graph.Weighted.Weight is used. Unweighted graphs and absent weights cost 1.
func (a *Graph) Weight() astar.WeightFunc[int64] {
	return astar.Static(a.edgeWeight)
}

func (a *Graph) edgeWeight(e astar.Edge[int64]) float64 {
	if wm, ok := a.g.(graph.WeightedMultigraph); ok && e.Key != "" {
		lid, err := strconv.ParseInt(e.Key, 10, 64)
		if err == nil {
			for _, l := range graph.WeightedLinesOf(wm.WeightedLines(e.From, e.To)) {
				if l.ID() == lid {
					return l.Weight()
				}
			}
		}
	}
	if wg, ok := a.g.(graph.Weighted); ok {
		if w, ok := wg.Weight(e.From, e.To); ok {
			return w
		}
	}

	return 1
}

// Heuristic adapts a gonum-style heuristic over graph.Node values. Node IDs
// unknown to the graph estimate 0.
func (a *Graph) Heuristic(h func(x, y graph.Node) float64) astar.Heuristic[int64] {
	if h == nil {
		return nil
	}

	return func(node, target int64) float64 {
		x, y := a.g.Node(node), a.g.Node(target)
		if x == nil || y == nil {
			return 0
		}

		return h(x, y)
	}
}
