package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/edgestar/astar"
)

// wallView sees every in-bounds cell as a node; walls included.
type wallView struct {
	gg *GridGraph
}

func (w wallView) HasNode(c Cell) bool { return w.gg.InBounds(c.X, c.Y) }

func (w wallView) Successors(c Cell) ([]astar.Edge[Cell], error) {
	out := make([]astar.Edge[Cell], 0, len(w.gg.neighborOffsets))
	for _, d := range w.gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if w.gg.InBounds(n.X, n.Y) {
			out = append(out, astar.Edge[Cell]{From: c, To: n})
		}
	}

	return out, nil
}

// Bridge finds a path from src to dst that enters the fewest walls, and
// returns it with the number of walls entered. src itself is never counted.
//
// Entering a wall costs 1, entering a passable cell costs 0, searched with
// astar in Dijkstra mode.
//
// Errors: ErrOutOfBounds if either cell lies outside the grid.
// Complexity: O(W·H·d · log(W·H·d)).
func (gg *GridGraph) Bridge(src, dst Cell) ([]Cell, int, error) {
	if !gg.InBounds(src.X, src.Y) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, src)
	}
	if !gg.InBounds(dst.X, dst.Y) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, dst)
	}

	breaks := astar.Static(func(e astar.Edge[Cell]) float64 {
		if gg.Passable(e.To) {
			return 0
		}
		return 1
	})
	res, err := astar.Search[Cell](wallView{gg: gg}, src, dst, breaks, nil)
	if err != nil {
		return nil, 0, err
	}

	return res.Path, int(res.Cost), nil
}
