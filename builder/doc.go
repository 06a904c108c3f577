// Package builder generates deterministic core.Graph fixtures: paths,
// cycles, grids and Erdős–Rényi-like random graphs.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph from
// core options, resolves builder options and runs the constructors in order.
// Same inputs, options, seed and constructor order give identical graphs,
// including edge IDs, which keeps search results reproducible in tests and
// benchmarks.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse and random weights.
//   - WithIDScheme: vertex index → ID (default decimal).
//   - WithWeightFn: edge weights on weighted graphs (default 1).
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter below its minimum.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource: RandomSparse with 0 < p < 1 and no RNG.
//   - ErrConstructFailed: nil constructor.
package builder
