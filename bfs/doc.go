// Package bfs provides breadth-first search over a grid.Graph,
// returning unweighted shortest paths, parent links, and visit order.
//
// What
//
//   - FindPath: the shortest start→goal path as a []grid.Cell, or an empty
//     slice when the goal cannot be reached. "No path" is a normal result.
//   - BFS: a full traversal returning a Result with
//   - Order: visit sequence
//   - Depth: map from cell → distance (edges) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0), optional Target.
//
// Determinism
//
//	grid.Graph yields neighbors in the fixed order up, down, left, right and
//	BFS enqueues them in that order, so the visit sequence and the path
//	returned among several shortest candidates are fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth, Parent, visited)
//
// Usage
//
//	path := bfs.FindPath(g.Graph(), g.Start(), g.Goal())
//	if len(path) == 0 {
//		// goal unreachable
//	}
//
//	res, err := bfs.BFS(
//		g.Graph(), g.Start(),
//		bfs.WithContext(ctx),
//		bfs.WithTarget(g.Goal()),
//		bfs.WithOnVisit(func(c grid.Cell, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start cell is not a node.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for unreached cells.
//   - Context errors and wrapped OnVisit errors.
package bfs
