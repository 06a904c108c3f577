// Package astar implements an A* shortest-path search whose edge-cost
// callback sees the edge being relaxed together with the edge that led into
// its tail vertex.
//
// Overview:
//
//   - Search finds a least-cost path between two nodes of any graph exposed
//     through the two-method Graph interface (HasNode, Successors).
//   - The WeightFunc receives (graph, prev, cur): prev is nil for edges that
//     leave the source, and the incoming edge of cur.From otherwise. Costs
//     that depend on the transition (turning penalties, rate-of-change
//     penalties, mode switches) need no precomputed per-edge weights.
//   - A Heuristic estimates the remaining cost to the target. A nil heuristic
//     is the zero heuristic and the search degrades to Dijkstra's algorithm.
//
// Ordering and determinism:
//
//   - The frontier is ordered by (accumulated + heuristic, insertion sequence).
//     The sequence number is a strict tie-breaker: among equal estimates the
//     entry pushed first is expanded first, so identical inputs always yield
//     the identical path even when several paths share the minimum cost.
//   - Estimates that are NaN sort after every other entry.
//
// Bookkeeping:
//
//   - A node is finalized when it is popped; relaxation never pushes a
//     finalized node again. Improved routes to a node that is still in the
//     frontier are pushed as new entries and the older ones are discarded
//     lazily on pop (“lazy decrease-key”). A popped entry for a finalized
//     node is dropped unless it is strictly cheaper, which only an
//     inconsistent heuristic can produce.
//   - The heuristic is evaluated once per discovered node.
//
// Callback contract:
//
//   - Weights must be finite and non-negative and the heuristic admissible for
//     the result to be optimal. Neither is checked by default; a violation
//     gives an undefined (but terminating) result. WithCostValidation turns
//     on a per-relaxation check that fails with ErrInvalidCost.
//   - The weight function is called exactly once per relaxation attempt, so
//     the same edge may be priced several times through different
//     predecessor edges.
//
// Complexity:
//
//   - Time:  O((V + E) log E) heap work plus E weight calls.
//   - Space: O(V + E) for the ledgers and the frontier with stale entries.
//
// Collaborators:
//
//   - CoreGraph adapts *core.Graph, including parallel edges (Edge.Key holds
//     the core edge ID) and attribute-driven weights (CoreGraph.WeightBy).
//   - gridgraph and gonumgraph provide further Graph implementations.
package astar
