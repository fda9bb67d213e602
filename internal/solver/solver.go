// Package solver turns a board request into a grid, its shortest path and
// the overlay used for display. It is the single place where the pure core
// is logged and measured.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/middleware"
)

// ErrTooLarge is returned when a board exceeds the configured cell limit.
var ErrTooLarge = errors.New("solver: board exceeds cell limit")

// Request describes a board either by generation parameters or by an
// explicit Layout. A non-empty Layout wins.
type Request struct {
	Rows      int
	Cols      int
	Start     grid.Cell
	Goal      grid.Cell
	Obstacles int
	// Seed makes obstacle placement reproducible; 0 means a fresh random seed.
	Seed   int64
	Layout [][]int
}

// Result is a solved board. Path is empty when the goal is unreachable.
type Result struct {
	Grid     *grid.Grid
	Path     []grid.Cell
	Overlay  *grid.Grid
	Found    bool
	Duration time.Duration
}

// Solver builds and solves boards.
type Solver struct {
	log      *logrus.Logger
	maxCells int
}

// New returns a Solver that rejects boards larger than maxCells cells.
// A maxCells of 0 disables the limit.
func New(log *logrus.Logger, maxCells int) *Solver {
	return &Solver{log: log, maxCells: maxCells}
}

// Solve builds the board described by req, runs the shortest-path search
// from its start to its goal and draws the overlay. Configuration and
// layout errors from the grid package are returned unchanged (wrapped).
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	began := time.Now()

	g, err := s.build(req)
	if err != nil {
		metrics.SolvesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	fields := logrus.Fields{
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"start":     g.Start().String(),
		"goal":      g.Goal().String(),
		"obstacles": g.ObstacleCount(),
		"nodes":     g.Graph().NodeCount(),
		"edges":     g.Graph().EdgeCount(),
	}
	if rid := middleware.RequestIDFromContext(ctx); rid != "" {
		fields[middleware.RequestIDKey] = rid
	}
	log := s.log.WithFields(fields)

	if s.log.IsLevelEnabled(logrus.TraceLevel) {
		if err := s.trace(ctx, g, log); err != nil {
			return nil, err
		}
	}

	path := bfs.FindPath(g.Graph(), g.Start(), g.Goal())
	res := &Result{
		Grid:     g,
		Path:     path,
		Overlay:  g.Overlay(path),
		Found:    len(path) > 0,
		Duration: time.Since(began),
	}

	metrics.SolveDuration.Observe(res.Duration.Seconds())
	if res.Found {
		metrics.SolvesTotal.WithLabelValues(metrics.OutcomeFound).Inc()
		metrics.PathLength.Observe(float64(len(path) - 1))
		log.WithField("length", len(path)-1).Debug("path found")
	} else {
		metrics.SolvesTotal.WithLabelValues(metrics.OutcomeNoPath).Inc()
		log.Debug("no path found")
	}

	return res, nil
}

func (s *Solver) build(req Request) (*grid.Grid, error) {
	if len(req.Layout) > 0 {
		if s.maxCells > 0 && len(req.Layout)*len(req.Layout[0]) > s.maxCells {
			return nil, fmt.Errorf("%w: %d cells allowed", ErrTooLarge, s.maxCells)
		}
		return grid.FromLayout(req.Layout)
	}

	// rows > maxCells/cols is rows*cols > maxCells without the overflow.
	if s.maxCells > 0 && req.Rows > 0 && req.Cols > 0 && req.Rows > s.maxCells/req.Cols {
		return nil, fmt.Errorf("%w: %dx%d > %d cells", ErrTooLarge, req.Rows, req.Cols, s.maxCells)
	}
	var opts []grid.Option
	if req.Seed != 0 {
		opts = append(opts, grid.WithSeed(req.Seed))
	}
	return grid.New(req.Rows, req.Cols, req.Start, req.Goal, req.Obstacles, opts...)
}

// trace replays the search with hooks so every dequeued cell is logged.
func (s *Solver) trace(ctx context.Context, g *grid.Grid, log *logrus.Entry) error {
	_, err := bfs.BFS(g.Graph(), g.Start(),
		bfs.WithContext(ctx),
		bfs.WithTarget(g.Goal()),
		bfs.WithOnVisit(func(c grid.Cell, depth int) error {
			log.WithFields(logrus.Fields{"cell": c.String(), "depth": depth}).Trace("bfs visit")
			return nil
		}),
	)
	if errors.Is(err, bfs.ErrStartNotFound) {
		// start is never an obstacle on a valid grid; nothing to trace
		return nil
	}
	return err
}
