package graphio

import (
	"fmt"

	"github.com/katalvlaran/edgestar/core"
)

// Build constructs a core.Graph from d. Vertices are added first, then edges
// in document order.
func (d *Document) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.weighted() {
		opts = append(opts, core.WithWeighted())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrBadDocument, v, err)
		}
	}
	for i, e := range d.Edges {
		eopts := make([]core.EdgeOption, 0, len(e.Attrs)+1)
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		for name, v := range e.Attrs {
			eopts = append(eopts, core.WithEdgeAttr(name, v))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrBadDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

func (d *Document) weighted() bool {
	if d.Weighted != nil {
		return *d.Weighted
	}
	for _, e := range d.Edges {
		if e.Weight != 0 {
			return true
		}
	}

	return false
}

// FromGraph captures g as a Document. Every vertex is listed; edges follow
// insertion order and carry a Directed override only where it differs from
// the graph default.
func FromGraph(g *core.Graph) *Document {
	weighted := g.Weighted()
	d := &Document{
		Directed: g.Directed(),
		Weighted: &weighted,
		Loops:    g.Looped(),
		Multi:    g.Multigraph(),
		Mixed:    g.MixedEdges(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if e.Directed != d.Directed {
			dir := e.Directed
			ed.Directed = &dir
		}
		if len(e.Attrs) > 0 {
			ed.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				ed.Attrs[k] = v
			}
		}
		d.Edges = append(d.Edges, ed)
	}

	return d
}
