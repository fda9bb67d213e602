package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// nonCoord matches everything that cannot be part of "row,col".
var nonCoord = regexp.MustCompile(`[^0-9,-]`)

// parseCell reads a coordinate typed by a human: "(2, 3)", "2,3" and
// "[2 ,3]" all yield {2 3}.
func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(nonCoord.ReplaceAllString(s, ""), ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("coordinate %q must look like row,col", s)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return grid.Cell{}, fmt.Errorf("coordinate %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return grid.Cell{}, fmt.Errorf("coordinate %q: bad column: %w", s, err)
	}
	return grid.Cell{Row: row, Col: col}, nil
}

func cellFromPair(p [2]int) grid.Cell {
	return grid.Cell{Row: p[0], Col: p[1]}
}
