package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *grid.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Cell]bool
	res     *Result
}

// FindPath returns a shortest path (by edge count) from start to goal,
// both inclusive. Neighbors are explored in the graph's fixed order
// (up, down, left, right), so among several shortest paths the result is
// deterministic.
//
// An empty result means "no path": goal unreachable, start or goal not a
// node of g (for example an obstacle), or g == nil. It is never an error.
// FindPath(g, x, x) returns [x] for any node x.
//
// Complexity: O(V + E) time, O(V) memory.
func FindPath(g *grid.Graph, start, goal grid.Cell) []grid.Cell {
	if g == nil || !g.HasNode(start) || !g.HasNode(goal) {
		return nil
	}
	res, err := BFS(g, start, WithTarget(goal))
	if err != nil {
		return nil
	}
	path, err := res.PathTo(goal)
	if err != nil {
		return nil
	}
	return path
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Without WithTarget or WithMaxDepth it
// explores the whole connected component of start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *grid.Graph, start grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Cell]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Cell, 0, n),
			Depth:  make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the back of the queue.
func (w *walker) enqueue(c grid.Cell, d int, parent *grid.Cell) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.hasTarget && item.cell == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the front item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbor, in graph order, that is
// within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.cell) {
		if !w.visited[nbr] {
			parent := item.cell
			w.enqueue(nbr, next, &parent)
		}
	}
}
