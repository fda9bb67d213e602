// Package gridpath is a small playground for grid navigation: build a board,
// scatter obstacles, and find the shortest way from start to goal.
//
// 🚀 What is gridpath?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• Grid model: R×C boards with one start, one goal and N obstacles
//		• Adjacency: 4-directional graph over the non-obstacle cells
//		• Search: breadth-first shortest path with traversal hooks
//		• Overlay: the board redrawn with the found path marked
//
// ✨ Why gridpath?
//
//   - Reproducible - seedable obstacle placement (WithSeed, WithRand)
//   - Stable - fixed neighbor order up, down, left, right; ties resolve the same way every run
//   - Pure core - grid and bfs never log and report bad input as sentinel errors
//
// Layout:
//
//	grid/               - Cell, State, Grid, FromLayout, Overlay, BuildGraph, Graph
//	bfs/                - FindPath (early exit) and BFS (full traversal, hooks, PathTo)
//	internal/solver/    - configuration → grid → graph → path → overlay, with logging and metrics
//	internal/api/       - HTTP front-end: POST /v1/solve, /health, /metrics
//	cmd/gridpath/       - CLI: solve, layout, serve, version
//
// Quick start:
//
//	g, _ := grid.New(3, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}, 2, grid.WithSeed(7))
//	path := bfs.FindPath(g.Graph(), g.Start(), g.Goal())
//	fmt.Println(g.Overlay(path))
package gridpath
