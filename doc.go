// Package edgestar finds least-cost paths in graphs whose edge costs depend
// on the path taken so far.
//
// 🚀 What is edgestar?
//
//	A generic A* search in which the weight callback sees the previous edge
//	of the path as well as the current one:
//		• astar/      — the engine: Search, PathLength, EdgesCost, options
//		• core/       — thread-safe in-memory graph with attributed edges
//		• gridgraph/  — 2D cost grids with Manhattan/Octile heuristics and
//		                turn penalties
//		• gonumgraph/ — any gonum graph as a search space
//		• graphio/    — YAML documents and SQLite storage for core graphs
//		• builder/    — deterministic graph fixtures
//		• cmd/edgestar — command-line front end
//
// ✨ Why previous-edge costs?
//
//   - Turn penalties and direction changes on grids and road networks
//   - Rate-of-change costs (current weight over previous weight)
//   - Any cost model where a step's price depends on how you arrived
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("S", "A", 2)
//	_, _ = g.AddEdge("A", "T", 3)
//	cg := astar.NewCoreGraph(g)
//	res, err := astar.Search(cg, "S", "T", cg.RatioWeightBy("weight"), nil)
//
// The search tracks the best cost per node, not per (node, previous edge)
// pair, so with previous-edge-dependent weights the result is the best path
// among those the node-level relaxation explores.
package edgestar
