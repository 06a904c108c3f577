// Package core provides a thread-safe in-memory Graph used as the default
// collaborator of the edgestar search packages.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted), weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Named numeric edge attributes (WithEdgeAttr), consulted by weight functions
//   - Monotonic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted lexicographically; Edges() and Neighbors() follow
//	edge insertion order. Search algorithms rely on this to produce the same
//	path for the same graph on every run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	GetEdge(edgeID string) (*Edge, error)  // O(1)
//	HasEdge(from, to string) bool          // O(d)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // O(d), outgoing + undirected incident edges
//	Vertices() []string                   // O(V·log V)
//	Edges() []*Edge                       // O(E)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge direction override without mixed-mode
package core
