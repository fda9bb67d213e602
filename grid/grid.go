package grid

import (
	"fmt"
	"math"
)

// New builds an R×C grid with start and goal placed and exactly obstacles
// obstacle cells drawn uniformly at random, without replacement, from the
// remaining free cells. The Graph is built as part of construction.
//
// Returns ErrInvalidConfiguration when rows or cols is < 1, start or goal
// is out of bounds, start equals goal, or obstacles is outside [0, R·C−2].
// No Grid is returned on failure.
//
// Complexity: O(R×C) time and memory.
func New(rows, cols int, start, goal Cell, obstacles int, opts ...Option) (*Grid, error) {
	if err := validateConfig(rows, cols, start, goal, obstacles); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	cells := newCells(rows, cols)
	cells[start.Row][start.Col] = Start
	cells[goal.Row][goal.Col] = Goal

	// Enumerate the free cells once and take a uniform random subset of size
	// obstacles via a Fisher–Yates shuffle.
	free := make([]Cell, 0, rows*cols-2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r][c] == Empty {
				free = append(free, Cell{Row: r, Col: c})
			}
		}
	}
	cfg.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	for _, c := range free[:obstacles] {
		cells[c.Row][c.Col] = Obstacle
	}

	return fromCells(cells, start, goal, obstacles), nil
}

// validateConfig checks every construction parameter before anything is allocated.
func validateConfig(rows, cols int, start, goal Cell, obstacles int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%w: %dx%d cells overflow int", ErrInvalidConfiguration, rows, cols)
	}
	in := func(c Cell) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
	if !in(start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidConfiguration, start, rows, cols)
	}
	if !in(goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalidConfiguration, goal, rows, cols)
	}
	if start == goal {
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidConfiguration, start)
	}
	if limit := rows*cols - 2; obstacles < 0 || obstacles > limit {
		return fmt.Errorf("%w: obstacle count %d outside [0, %d]", ErrInvalidConfiguration, obstacles, limit)
	}
	return nil
}

// newCells allocates an all-Empty rows×cols state array.
func newCells(rows, cols int) [][]State {
	cells := make([][]State, rows)
	for r := range cells {
		cells[r] = make([]State, cols)
	}
	return cells
}

// fromCells wraps an already validated state array and builds its Graph.
// Ownership of cells passes to the returned Grid.
func fromCells(cells [][]State, start, goal Cell, obstacles int) *Grid {
	g := &Grid{
		rows:      len(cells),
		cols:      len(cells[0]),
		start:     start,
		goal:      goal,
		obstacles: obstacles,
		cells:     cells,
	}
	g.graph = BuildGraph(g)
	return g
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// ObstacleCount returns the number of obstacle cells.
func (g *Grid) ObstacleCount() int { return g.obstacles }

// Graph returns the adjacency graph derived from this grid at construction.
func (g *Grid) Graph() *Graph { return g.graph }

// InBounds reports whether c lies within [0,R)×[0,C).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellState returns the state of c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CellState(c Cell) (State, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[c.Row][c.Col], nil
}

// state is CellState without the bounds check, for callers that already checked.
func (g *Grid) state(r, c int) State {
	return g.cells[r][c]
}

// Count returns how many cells hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, row := range g.cells {
		for _, st := range row {
			if st == s {
				n++
			}
		}
	}
	return n
}
