package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFromLayout loads a hand-made board and inspects its graph.
//
//	1 = start, 2 = goal, -1 = obstacle, 0 = empty
func ExampleFromLayout() {
	g, err := grid.FromLayout([][]int{
		{1, 0, -1},
		{0, 0, 0},
		{-1, 0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g.String())
	fmt.Println("nodes:", g.Graph().NodeCount(), "edges:", g.Graph().EdgeCount())
	fmt.Println("neighbors of (1, 1):", g.Graph().Neighbors(grid.Cell{Row: 1, Col: 1}))
	// Output:
	// S . #
	// . . .
	// # . G
	// nodes: 7 edges: 8
	// neighbors of (1, 1): [(0, 1) (2, 1) (1, 0) (1, 2)]
}

// ExampleGrid_Overlay draws a path; the endpoints keep their own glyphs.
func ExampleGrid_Overlay() {
	g, _ := grid.New(2, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 2}, 0)
	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
	fmt.Print(g.Overlay(path).String())
	// Output:
	// S * *
	// . . G
}
