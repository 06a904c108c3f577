package astar_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/edgestar/astar"
	"github.com/katalvlaran/edgestar/builder"
	"github.com/katalvlaran/edgestar/core"
)

// SearchSuite exercises Search on core-backed and ad-hoc graphs.
type SearchSuite struct {
	suite.Suite
}

// TestPlainSum verifies the plain-sum weight picks the long cheap branch.
func (s *SearchSuite) TestPlainSum() {
	g := scenarioGraph()

	res, err := astar.Search(g, "S", "T", g.WeightBy("weight"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "A2", "B2", "C2", "T"}, res.Path)
	require.Equal(s.T(), 4.0, res.Cost)
	require.Equal(s.T(), 6, res.Expanded)
	require.Len(s.T(), res.Edges, 4)

	length, err := astar.PathLength(g, "S", "T", g.WeightBy("weight"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, length)
}

// TestRatioWeight verifies the previous edge reaches the weight function:
// dividing by the previous weight makes S→A1→T the cheaper route.
func (s *SearchSuite) TestRatioWeight() {
	g := scenarioGraph()

	res, err := astar.Search(g, "S", "T", g.RatioWeightBy("weight"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "A1", "T"}, res.Path)
	require.Equal(s.T(), -5.5, res.Cost)

	length, err := astar.PathLength(g, "S", "T", g.RatioWeightBy("weight"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), -5.5, length)
}

// TestSameSourceAndTarget verifies the trivial path invokes no callback.
func (s *SearchSuite) TestSameSourceAndTarget() {
	g := scenarioGraph()
	var calls []weightCall
	hCalls := 0
	h := func(_, _ string) float64 { hCalls++; return 0 }

	res, err := astar.Search(g, "A2", "A2", recordingWeight(g.WeightBy(""), &calls), h)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A2"}, res.Path)
	require.Empty(s.T(), res.Edges)
	require.Zero(s.T(), res.Cost)
	require.Empty(s.T(), calls)
	require.Zero(s.T(), hCalls)
}

// TestUnreachable verifies ErrNoPath for a disconnected target.
func (s *SearchSuite) TestUnreachable() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "A", 1) // reaches A, but not from A
	cg := astar.NewCoreGraph(g)

	res, err := astar.Search(cg, "A", "D", cg.WeightBy(""), nil)
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
	require.Nil(s.T(), res.Path)
	require.Equal(s.T(), 2, res.Expanded)

	_, err = astar.PathLength(cg, "A", "D", cg.WeightBy(""), nil)
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
}

// TestValidation verifies call-boundary errors.
func (s *SearchSuite) TestValidation() {
	g := scenarioGraph()
	w := g.WeightBy("")

	_, err := astar.Search[string](nil, "S", "T", w, nil)
	require.ErrorIs(s.T(), err, astar.ErrNilGraph)

	_, err = astar.Search(g, "S", "T", nil, nil)
	require.ErrorIs(s.T(), err, astar.ErrNilWeight)

	_, err = astar.Search(g, "X", "T", w, nil)
	require.ErrorIs(s.T(), err, astar.ErrNodeNotFound)

	_, err = astar.Search(g, "S", "X", w, nil)
	require.ErrorIs(s.T(), err, astar.ErrNodeNotFound)

	_, err = astar.Search(g, "X", "X", w, nil)
	require.ErrorIs(s.T(), err, astar.ErrNodeNotFound)
}

// TestTieBreakDeterminism verifies first-inserted-first-expanded on equal costs.
func (s *SearchSuite) TestTieBreakDeterminism() {
	build := func(first, second string) *astar.CoreGraph {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		_, _ = g.AddEdge("S", first, 1)
		_, _ = g.AddEdge("S", second, 1)
		_, _ = g.AddEdge("A", "T", 1)
		_, _ = g.AddEdge("B", "T", 1)

		return astar.NewCoreGraph(g)
	}

	ab := build("A", "B")
	for i := 0; i < 20; i++ {
		res, err := astar.Search(ab, "S", "T", ab.WeightBy(""), nil)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"S", "A", "T"}, res.Path)
		require.Equal(s.T(), 2.0, res.Cost)
	}

	ba := build("B", "A")
	res, err := astar.Search(ba, "S", "T", ba.WeightBy(""), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "B", "T"}, res.Path)
}

// TestPreviousEdgeThreading verifies prev is nil exactly once on a simple
// path and equals the preceding edge for every later call.
func (s *SearchSuite) TestPreviousEdgeThreading() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "T", 1)
	cg := astar.NewCoreGraph(g)

	var calls []weightCall
	res, err := astar.Search(cg, "S", "T", recordingWeight(cg.WeightBy(""), &calls), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "A", "B", "T"}, res.Path)
	require.Len(s.T(), calls, 3)

	nilPrev := 0
	for i, c := range calls {
		if c.prev == nil {
			nilPrev++
			continue
		}
		require.Equal(s.T(), calls[i-1].cur, *c.prev)
		require.Equal(s.T(), c.prev.To, c.cur.From)
	}
	require.Equal(s.T(), 1, nilPrev)
	require.Equal(s.T(), astar.Edge[string]{From: "S", To: "A", Key: "e1"}, calls[0].cur)
}

// TestHeuristicOncePerNode verifies the heuristic cache.
func (s *SearchSuite) TestHeuristicOncePerNode() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "T", 1)
	_, _ = g.AddEdge("B", "T", 1)
	_, _ = g.AddEdge("A", "B", 0)
	cg := astar.NewCoreGraph(g)

	seen := map[string]int{}
	h := func(n, target string) float64 {
		require.Equal(s.T(), "T", target)
		seen[n]++
		return 0
	}
	_, err := astar.Search(cg, "S", "T", cg.WeightBy(""), h)
	require.NoError(s.T(), err)
	for n, c := range seen {
		assert.Equal(s.T(), 1, c, "heuristic for %s", n)
	}
	require.Len(s.T(), seen, 4)
}

// TestNaNEstimateSortsLast verifies NaN estimates are expanded after all others.
func (s *SearchSuite) TestNaNEstimateSortsLast() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "X", 1)
	_, _ = g.AddEdge("S", "Y", 5)
	_, _ = g.AddEdge("X", "T", 1)
	_, _ = g.AddEdge("Y", "T", 1)
	cg := astar.NewCoreGraph(g)

	h := func(n, _ string) float64 {
		if n == "X" {
			return math.NaN()
		}
		return 0
	}
	res, err := astar.Search(cg, "S", "T", cg.WeightBy(""), h)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "Y", "T"}, res.Path)
	require.Equal(s.T(), 6.0, res.Cost)
}

// TestMaxExpansions verifies the expansion bound.
func (s *SearchSuite) TestMaxExpansions() {
	g := scenarioGraph()

	res, err := astar.Search(g, "S", "T", g.WeightBy(""), nil, astar.WithMaxExpansions(2))
	require.ErrorIs(s.T(), err, astar.ErrExpansionLimit)
	require.Equal(s.T(), 2, res.Expanded)

	res, err = astar.Search(g, "S", "T", g.WeightBy(""), nil, astar.WithMaxExpansions(6))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, res.Expanded)

	require.PanicsWithValue(s.T(), astar.ErrBadMaxExpansions.Error(), func() {
		astar.WithMaxExpansions(-1)(&astar.Options{})
	})
}

// TestCostValidation verifies the optional cost check.
func (s *SearchSuite) TestCostValidation() {
	g := scenarioGraph()

	_, err := astar.Search(g, "S", "T", g.WeightBy(""), nil, astar.WithCostValidation())
	require.ErrorIs(s.T(), err, astar.ErrInvalidCost)

	nan := func(astar.Graph[string], *astar.Edge[string], astar.Edge[string]) float64 { return math.NaN() }
	_, err = astar.Search(g, "S", "T", nan, nil, astar.WithCostValidation())
	require.ErrorIs(s.T(), err, astar.ErrInvalidCost)

	inf := astar.Static(func(astar.Edge[string]) float64 { return math.Inf(1) })
	_, err = astar.Search(g, "S", "T", inf, nil, astar.WithCostValidation())
	require.ErrorIs(s.T(), err, astar.ErrInvalidCost)

	// without validation negative costs are the caller's business
	_, err = astar.Search(g, "S", "T", g.WeightBy(""), nil)
	require.NoError(s.T(), err)
}

// TestParallelEdges verifies the edge key selects the cheaper parallel edge.
func (s *SearchSuite) TestParallelEdges() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 1)
	cg := astar.NewCoreGraph(g)

	res, err := astar.Search(cg, "A", "C", cg.WeightBy(""), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Equal(s.T(), "e2", res.Edges[0].Key)

	// keyless lookup falls back to the first matching edge
	ce, err := cg.Lookup(astar.Edge[string]{From: "A", To: "B"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "e1", ce.ID)

	_, err = cg.Lookup(astar.Edge[string]{From: "B", To: "A", Key: "e1"})
	require.ErrorIs(s.T(), err, core.ErrEdgeNotFound)
	_, err = cg.Lookup(astar.Edge[string]{From: "C", To: "A"})
	require.ErrorIs(s.T(), err, core.ErrEdgeNotFound)
}

// TestUndirectedAndLoops verifies undirected traversal and ignored self-loops.
func (s *SearchSuite) TestUndirectedAndLoops() {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "A", 5)
	cg := astar.NewCoreGraph(g)

	res, err := astar.Search(cg, "C", "A", cg.WeightBy(""), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"C", "B", "A"}, res.Path)
	require.Equal(s.T(), 2.0, res.Cost)
	require.Equal(s.T(), astar.Edge[string]{From: "C", To: "B", Key: "e3"}, res.Edges[0])
}

// TestAttributeWeights verifies attribute lookup and unweighted fallbacks.
func (s *SearchSuite) TestAttributeWeights() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0, core.WithEdgeAttr("toll", 10))
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("C", "E", 0)
	_, _ = g.AddEdge("E", "D", 0)
	cg := astar.NewCoreGraph(g)

	// hop count on an unweighted graph
	res, err := astar.Search(cg, "A", "D", cg.WeightBy("weight"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "D"}, res.Path)
	require.Equal(s.T(), 2.0, res.Cost)

	// toll of 10 on A→B, missing tolls count as 1
	res, err = astar.Search(cg, "A", "D", cg.WeightBy("toll"), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "C", "E", "D"}, res.Path)
	require.Equal(s.T(), 3.0, res.Cost)

	res, err = astar.Search(cg, "A", "D", astar.Unit[string](), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.Cost)
}

// TestSuccessorsError verifies collaborator errors are propagated.
func (s *SearchSuite) TestSuccessorsError() {
	g := newIntGraph(2)
	g.add(0, 1, 1)
	g.err = errBackend

	_, err := astar.Search[int](g, 0, 1, g.weight(), nil)
	require.ErrorIs(s.T(), err, errBackend)
}

// TestHeuristicPreservesOptimum verifies an admissible heuristic changes the
// expansion count but not the cost.
func (s *SearchSuite) TestHeuristicPreservesOptimum() {
	// 0 - 1 - 2 - 3 - 4 line with a costly shortcut 0 → 4 and a dead-end branch
	g := newIntGraph(7)
	for i := 0; i < 4; i++ {
		g.add(i, i+1, 1)
	}
	g.add(0, 4, 10)
	g.add(0, 5, 1)
	g.add(5, 6, 1)
	h := func(n, target int) float64 {
		if n >= 5 {
			return 100 // true cost is infinite from the dead end
		}
		return float64(target - n)
	}

	plain, err := astar.Search[int](g, 0, 4, g.weight(), nil)
	require.NoError(s.T(), err)
	guided, err := astar.Search[int](g, 0, 4, g.weight(), h)
	require.NoError(s.T(), err)

	require.Equal(s.T(), plain.Path, guided.Path)
	require.Equal(s.T(), 4.0, guided.Cost)
	require.Less(s.T(), guided.Expanded, plain.Expanded)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestSearch_MatchesFloydWarshall compares Dijkstra-mode costs with all-pairs
// distances on random directed graphs and checks every path is a real walk.
func TestSearch_MatchesFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 9

	for round := 0; round < 25; round++ {
		g := newIntGraph(n)
		dist := make([][]float64, n)
		for i := range dist {
			dist[i] = make([]float64, n)
			for j := range dist[i] {
				if i != j {
					dist[i][j] = math.Inf(1)
				}
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || rng.Float64() > 0.3 {
					continue
				}
				w := float64(1 + rng.Intn(9))
				g.add(i, j, w)
				dist[i][j] = w
			}
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
						dist[i][j] = d
					}
				}
			}
		}

		for src := 0; src < n; src++ {
			for dst := 0; dst < n; dst++ {
				res, err := astar.Search[int](g, src, dst, g.weight(), nil)
				if math.IsInf(dist[src][dst], 1) {
					require.ErrorIs(t, err, astar.ErrNoPath, "round %d %d→%d", round, src, dst)
					continue
				}
				require.NoError(t, err, "round %d %d→%d", round, src, dst)
				require.Equal(t, dist[src][dst], res.Cost, "round %d %d→%d", round, src, dst)

				// connected walk along real edges
				require.Equal(t, src, res.Path[0])
				require.Equal(t, dst, res.Path[len(res.Path)-1])
				require.Len(t, res.Edges, len(res.Path)-1)
				sum := 0.0
				for i, e := range res.Edges {
					require.Equal(t, res.Path[i], e.From)
					require.Equal(t, res.Path[i+1], e.To)
					w, ok := g.w[e]
					require.True(t, ok, "edge %v not in graph", e)
					sum += w
				}
				require.Equal(t, res.Cost, sum)
			}
		}
	}
}

// TestSearch_BuiltGrid verifies hop counts on generated grids: every
// shortest route between opposite corners has rows+cols-2 steps.
func TestSearch_BuiltGrid(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 6}, {4, 5}, {7, 3}} {
		rows, cols := dims[0], dims[1]
		g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
		require.NoError(t, err)
		cg := astar.NewCoreGraph(g)

		target := strconv.Itoa(rows-1) + "," + strconv.Itoa(cols-1)
		res, err := astar.Search(cg, "0,0", target, astar.Unit[string](), nil)
		require.NoError(t, err)
		require.Equal(t, float64(rows+cols-2), res.Cost, "grid %dx%d", rows, cols)
		require.Len(t, res.Path, rows+cols-1)
	}
}
