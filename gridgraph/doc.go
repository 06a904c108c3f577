// Package gridgraph treats a 2D grid of integer cell costs as a search space
// for the astar package.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells with value below
//     GridOptions.Threshold are walls; every other cell is passable and
//     costs its value to enter.
//   - GridGraph implements astar.Graph[Cell] directly, with Conn4 or Conn8
//     movement.
//   - Manhattan and Octile heuristics, scaled by the cheapest passable cell.
//   - StepCost and TurnPenalty weights. TurnPenalty reads the previous edge
//     to charge for direction changes.
//   - Bridge finds the fewest walls to break to join two cells.
//   - ConnectedComponents groups passable cells into regions.
//   - ToCoreGraph converts the passable cells to a directed *core.Graph.
//
// Complexity:
//
//   - Search with StepCost: O(W×H×d × log(W×H×d)), d = 4 or 8.
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:          O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrWall: Successors was asked about a wall cell.
package gridgraph
