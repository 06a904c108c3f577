package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// gg.Conn. Components are listed in row-major order of their first cell;
// cells within a component in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c0 := Cell{X: x, Y: y}
			if !gg.Passable(c0) || seen[gg.index(c0)] {
				continue
			}
			queue := []Cell{c0}
			seen[gg.index(c0)] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range gg.neighborOffsets {
					v := Cell{X: u.X + d[0], Y: u.Y + d[1]}
					if !gg.Passable(v) || seen[gg.index(v)] {
						continue
					}
					seen[gg.index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// index maps c to a row-major index: y*Width + x.
func (gg *GridGraph) index(c Cell) int {
	return c.Y*gg.Width + c.X
}
