package grid

import (
	"encoding/json"
	"fmt"
)

// Cell is a (row, column) coordinate. It doubles as a graph node identity and
// is comparable, so it can be used directly as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// MarshalJSON encodes the cell as a two-element array [row, col].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a two-element array [row, col]. Any other length
// is rejected rather than padded or truncated.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var rc []int
	if err := json.Unmarshal(data, &rc); err != nil {
		return fmt.Errorf("grid: cell must be [row, col]: %w", err)
	}
	if len(rc) != 2 {
		return fmt.Errorf("grid: cell must be [row, col], got %d values", len(rc))
	}
	c.Row, c.Col = rc[0], rc[1]
	return nil
}

// State is the content of a single cell. The numeric values double as the
// marker codes understood by FromLayout and produced by Layout.
type State int

const (
	// Obstacle blocks movement; obstacle cells are not graph nodes.
	Obstacle State = -1
	// Empty is a free cell.
	Empty State = 0
	// Start marks the unique start cell.
	Start State = 1
	// Goal marks the unique goal cell.
	Goal State = 2
	// Path marks a free cell that lies on a drawn path (overlays only).
	Path State = 3
)

var stateNames = map[State]string{
	Obstacle: "obstacle",
	Empty:    "empty",
	Start:    "start",
	Goal:     "goal",
	Path:     "path",
}

var stateGlyphs = map[State]byte{
	Obstacle: '#',
	Empty:    '.',
	Start:    'S',
	Goal:     'G',
	Path:     '*',
}

// Valid reports whether s is one of the five known states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// String returns the lower-case state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Glyph returns the single character used by Grid.String.
func (s State) Glyph() byte {
	if g, ok := stateGlyphs[s]; ok {
		return g
	}
	return '?'
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("grid: unknown state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	for st, name := range stateNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("grid: unknown state %q", text)
}

// Grid is an R×C board. It is immutable once built; every accessor returns
// copies, and Overlay produces a fresh Grid.
type Grid struct {
	rows, cols int
	start      Cell
	goal       Cell
	obstacles  int
	cells      [][]State
	graph      *Graph
}
