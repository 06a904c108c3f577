// Package gonumgraph exposes any gonum.org/v1/gonum/graph.Graph as an
// astar.Graph[int64], keyed by gonum node IDs.
//
// Successors are sorted by target node ID, so searches are deterministic
// regardless of gonum's map-ordered iterators. Multigraphs yield one edge per
// line with the line ID in Edge.Key.
//
// Weight reads graph.Weighted / graph.WeightedMultigraph when the wrapped graph
// implements them and counts every edge as 1 otherwise. Heuristic adapts a
// gonum-style node heuristic.
package gonumgraph
