package core

// Neighbors returns the edges usable when leaving vertex id: directed edges
// with From == id and undirected edges incident to id. Loops appear once,
// parallel edges each appear. Order is edge insertion order.
//
// The returned *Edge values are shared with the graph; for an undirected edge
// reached from its To side, e.From != id. Use Step to orient it.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Step returns the vertex reached by leaving from along e, and whether e can
// be traversed in that direction at all.
func (e *Edge) Step(from string) (string, bool) {
	switch {
	case e.From == from:
		return e.To, true
	case !e.Directed && e.To == from:
		return e.From, true
	default:
		return "", false
	}
}
