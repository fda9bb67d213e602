// Package grid models a rectangular board of cells with one start, one goal
// and a number of obstacles, and derives the 4-connected graph that
// pathfinding runs on.
//
// What:
//
//   - Grid holds R×C cell states (Empty, Start, Goal, Obstacle, Path).
//   - New places start, goal and N obstacles drawn uniformly from the free cells.
//   - FromLayout rebuilds a Grid from a [][]int of marker codes.
//   - BuildGraph turns a Grid into a Graph of non-obstacle cells.
//   - Overlay derives a new Grid with a path drawn on it.
//
// Why:
//
//   - Robot / agent planning on small occupancy grids.
//   - Teaching and visualizing unweighted shortest paths.
//
// Determinism:
//
//	Graph nodes are stored in row-major order and every neighbor list is
//	generated in the fixed order up, down, left, right. Searches that walk
//	neighbor lists in order are therefore reproducible. Obstacle placement is
//	reproducible when a seed is supplied via WithSeed or WithRand.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - FromLayout: O(R×C) time and memory.
//   - BuildGraph: O(R×C×4) time, O(V+E) memory.
//   - Overlay:    O(R×C + len(path)).
//
// Errors:
//
//   - ErrInvalidConfiguration: bad dimensions, start/goal, or obstacle count.
//   - ErrMalformedLayout: empty, ragged, unknown codes, or not exactly one start and goal.
//   - ErrOutOfBounds: a queried cell lies outside the grid.
//
// A Grid and its Graph are immutable once built and safe for concurrent reads.
package grid
