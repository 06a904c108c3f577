package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/edgestar/astar"
	"github.com/katalvlaran/edgestar/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	minCost := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.Threshold && float64(v) < minCost {
				minCost = float64(v)
			}
		}
	}
	if math.IsInf(minCost, 1) || minCost < 0 {
		minCost = 0
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.Threshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the stored value of c.
func (gg *GridGraph) Value(c Cell) (int, error) {
	if !gg.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return gg.CellValues[c.Y][c.X], nil
}

// Passable reports whether c is in bounds and not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.Threshold
}

// HasNode implements astar.Graph: passable cells are nodes.
func (gg *GridGraph) HasNode(c Cell) bool {
	return gg.Passable(c)
}

// Successors implements astar.Graph. Edges lead to passable neighbors in
// clockwise order starting north.
func (gg *GridGraph) Successors(c Cell) ([]astar.Edge[Cell], error) {
	if !gg.InBounds(c.X, c.Y) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !gg.Passable(c) {
		return nil, fmt.Errorf("%w: %v", ErrWall, c)
	}

	out := make([]astar.Edge[Cell], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.Passable(n) {
			out = append(out, astar.Edge[Cell]{From: c, To: n})
		}
	}

	return out, nil
}

// ToCoreGraph converts the passable cells into a directed, weighted
// *core.Graph. Each cell becomes a vertex "x,y"; each move becomes an edge
// weighted with the StepCost of that move.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if c := (Cell{X: x, Y: y}); gg.Passable(c) {
				_ = g.AddVertex(c.String())
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			succ, err := gg.Successors(Cell{X: x, Y: y})
			if err != nil {
				continue // wall
			}
			for _, e := range succ {
				_, _ = g.AddEdge(e.From.String(), e.To.String(), gg.stepCost(e))
			}
		}
	}

	return g
}
