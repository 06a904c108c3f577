package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrWall indicates a wall cell where a passable one is required.
	ErrWall = errors.New("gridgraph: cell is a wall")
	// ErrNegativePenalty indicates a negative turn penalty.
	ErrNegativePenalty = errors.New("gridgraph: turn penalty must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid cell. Cells are the search nodes.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y", the vertex ID used by ToCoreGraph.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid search.
type GridOptions struct {
	// Threshold is the minimum cell value considered passable.
	Threshold int
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// DefaultGridOptions returns Threshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// GridGraph is an immutable cost grid. CellValues[y][x] is the cost of
// entering (x,y).
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	Threshold     int

	neighborOffsets [][2]int
	minCost         float64 // cheapest passable cell, clamped at 0
}
