// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/GetEdge/HasEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID. Missing endpoints are added.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Build the Edge with the graph default directedness, apply opts.
//  3. Reject a direction override when mixed-mode is disabled.
//  4. Ensure endpoints via AddVertex.
//  5. Lock muEdgeAdj, check the multi-edge constraint, assign ID, link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
//     ErrMixedEdgesNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(d) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Build the edge and apply per-edge options
	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	// 3) Direction overrides are legal only in mixed graphs
	if e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 4) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	e.ID, e.seq = nextEdgeID(g)
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// GetEdge returns the edge with the given ID.
// Errors: ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether at least one edge can be traversed from → to.
// Undirected edges count in both directions.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Edges returns every edge once, in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E|; undirected edges count once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked requires muEdgeAdj to be held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.otherEnd(from) == to {
			return true
		}
	}

	return false
}

// otherEnd returns the vertex reached when leaving v along e.
func (e *Edge) otherEnd(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// nextEdgeID returns a new textual edge ID and its sequence number.
// Must be called with muEdgeAdj held for writing.
func nextEdgeID(g *Graph) (string, uint64) {
	g.nextEdgeID++
	n := g.nextEdgeID
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
