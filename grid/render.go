package grid

import (
	"fmt"
	"strings"
)

// Info summarizes the board configuration, one attribute per line.
func (g *Grid) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board Size: %d x %d\n", g.rows, g.cols)
	fmt.Fprintf(&b, "Initial Position: %v\n", g.start)
	fmt.Fprintf(&b, "Final Position: %v\n", g.goal)
	fmt.Fprintf(&b, "Number of Obstacles: %d\n", g.obstacles)
	return b.String()
}

// String renders the grid one row per line, glyphs separated by spaces:
//
//	S . #
//	. * G
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (2*g.cols + 1))
	for _, row := range g.cells {
		for c, s := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String lists every node with its neighbors, one node per line, in
// insertion order:
//
//	Node (0, 0): Edges -> [(1, 0) (0, 1)]
func (gr *Graph) String() string {
	var b strings.Builder
	for _, u := range gr.nodes {
		fmt.Fprintf(&b, "Node %v: Edges -> %v\n", u, gr.edges[u])
	}
	return b.String()
}
