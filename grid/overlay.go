package grid

// Overlay returns a new Grid with the same dimensions and placement in which
// every Empty cell on path is marked Path. Start, Goal and Obstacle cells
// keep their state, so the endpoints of a path are never drawn as Path.
// Cells outside the grid are ignored. The receiver is not modified.
//
// Complexity: O(R×C + len(path)).
func (g *Grid) Overlay(path []Cell) *Grid {
	cells := newCells(g.rows, g.cols)
	for r := range cells {
		copy(cells[r], g.cells[r])
	}
	for _, c := range path {
		if g.InBounds(c) && cells[c.Row][c.Col] == Empty {
			cells[c.Row][c.Col] = Path
		}
	}
	return fromCells(cells, g.start, g.goal, g.obstacles)
}
