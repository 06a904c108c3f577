package gridgraph

import (
	"math"

	"github.com/katalvlaran/edgestar/astar"
)

// Manhattan returns |dx|+|dy| scaled by the cheapest passable cell.
// Admissible under Conn4 only.
func (gg *GridGraph) Manhattan() astar.Heuristic[Cell] {
	return func(node, target Cell) float64 {
		dx, dy := absInt(target.X-node.X), absInt(target.Y-node.Y)

		return float64(dx+dy) * gg.minCost
	}
}

// Octile returns the octile distance scaled by the cheapest passable cell.
// Admissible under both Conn4 and Conn8.
func (gg *GridGraph) Octile() astar.Heuristic[Cell] {
	return func(node, target Cell) float64 {
		dx, dy := absInt(target.X-node.X), absInt(target.Y-node.Y)
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}

		return (float64(hi-lo) + math.Sqrt2*float64(lo)) * gg.minCost
	}
}

// StepCost charges the value of the entered cell, times √2 for diagonal moves.
func (gg *GridGraph) StepCost() astar.WeightFunc[Cell] {
	return func(_ astar.Graph[Cell], _ *astar.Edge[Cell], cur astar.Edge[Cell]) float64 {
		return gg.stepCost(cur)
	}
}

// TurnPenalty charges StepCost plus penalty whenever the move direction
// differs from the previous move. Leaving the source is never a turn.
// Panics with ErrNegativePenalty if penalty < 0.
func (gg *GridGraph) TurnPenalty(penalty float64) astar.WeightFunc[Cell] {
	if penalty < 0 {
		panic(ErrNegativePenalty.Error())
	}

	return func(_ astar.Graph[Cell], prev *astar.Edge[Cell], cur astar.Edge[Cell]) float64 {
		cost := gg.stepCost(cur)
		if prev != nil && direction(*prev) != direction(cur) {
			cost += penalty
		}

		return cost
	}
}

func (gg *GridGraph) stepCost(e astar.Edge[Cell]) float64 {
	if !gg.InBounds(e.To.X, e.To.Y) {
		return math.Inf(1)
	}
	v := float64(gg.CellValues[e.To.Y][e.To.X])
	if d := direction(e); d[0] != 0 && d[1] != 0 {
		v *= math.Sqrt2
	}

	return v
}

// direction is the unit move of e.
func direction(e astar.Edge[Cell]) [2]int {
	return [2]int{sign(e.To.X - e.From.X), sign(e.To.Y - e.From.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
