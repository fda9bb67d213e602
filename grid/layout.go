package grid

import "fmt"

// FromLayout builds a Grid from a rectangular array of marker codes
// (see State). Dimensions, start, goal and obstacle count are derived by
// scanning. Path codes are kept as-is, so the Layout of an overlay can be
// loaded back.
//
// Returns ErrMalformedLayout if the layout is empty or ragged, holds an
// unknown code, or does not contain exactly one Start and one Goal marker.
// The input is copied; later changes to layout do not affect the Grid.
//
// Complexity: O(R×C).
func FromLayout(layout [][]int) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: layout must have at least one row and one column", ErrMalformedLayout)
	}
	rows, cols := len(layout), len(layout[0])

	var (
		starts, goals []Cell
		obstacles     int
	)
	cells := newCells(rows, cols)
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedLayout, r, len(row), cols)
		}
		for c, code := range row {
			s := State(code)
			if !s.Valid() {
				return nil, fmt.Errorf("%w: unknown code %d at %v", ErrMalformedLayout, code, Cell{Row: r, Col: c})
			}
			switch s {
			case Start:
				starts = append(starts, Cell{Row: r, Col: c})
			case Goal:
				goals = append(goals, Cell{Row: r, Col: c})
			case Obstacle:
				obstacles++
			}
			cells[r][c] = s
		}
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: want exactly one start marker, found %d", ErrMalformedLayout, len(starts))
	}
	if len(goals) != 1 {
		return nil, fmt.Errorf("%w: want exactly one goal marker, found %d", ErrMalformedLayout, len(goals))
	}

	return fromCells(cells, starts[0], goals[0], obstacles), nil
}

// Layout returns a deep copy of the grid as marker codes, suitable for
// FromLayout or for serialization.
func (g *Grid) Layout() [][]int {
	out := make([][]int, g.rows)
	for r, row := range g.cells {
		out[r] = make([]int, g.cols)
		for c, s := range row {
			out[r][c] = int(s)
		}
	}
	return out
}
