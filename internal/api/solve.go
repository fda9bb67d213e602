package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/middleware"
	"github.com/katalvlaran/gridpath/internal/solver"
)

// Solver is the subset of *solver.Solver the handler depends on.
type Solver interface {
	Solve(ctx context.Context, req solver.Request) (*solver.Result, error)
}

// SolveHandler serves board solves.
type SolveHandler struct {
	solver Solver
	log    *logrus.Logger
}

// NewSolveHandler creates a SolveHandler.
func NewSolveHandler(s Solver, log *logrus.Logger) *SolveHandler {
	return &SolveHandler{solver: s, log: log}
}

// solveRequest is the JSON body of POST /v1/solve. Either the generation
// fields or layout must be set.
type solveRequest struct {
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Start     grid.Cell `json:"start"`
	Goal      grid.Cell `json:"goal"`
	Obstacles int       `json:"obstacles"`
	Seed      int64     `json:"seed"`
	Layout    [][]int   `json:"layout"`
}

type boardInfo struct {
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Start     grid.Cell `json:"start"`
	Goal      grid.Cell `json:"goal"`
	Obstacles int       `json:"obstacles"`
}

type solveResponse struct {
	Info      boardInfo   `json:"info"`
	Board     [][]int     `json:"board"`
	Path      []grid.Cell `json:"path"`
	Found     bool        `json:"found"`
	Overlay   [][]int     `json:"overlay"`
	Nodes     int         `json:"nodes"`
	Edges     int         `json:"edges"`
	ElapsedMS float64     `json:"elapsed_ms"`
}

// Solve handles POST /v1/solve. An unreachable goal is a 200 with found=false.
func (h *SolveHandler) Solve(c *gin.Context) {
	var body solveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Set(middleware.OutcomeKey, metrics.OutcomeRejected)
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(c, http.StatusRequestEntityTooLarge, middleware.ErrCodeBodyTooLarge, err.Error())
			return
		}
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body: "+err.Error())
		return
	}

	res, err := h.solver.Solve(c.Request.Context(), solver.Request{
		Rows:      body.Rows,
		Cols:      body.Cols,
		Start:     body.Start,
		Goal:      body.Goal,
		Obstacles: body.Obstacles,
		Seed:      body.Seed,
		Layout:    body.Layout,
	})
	if err != nil {
		c.Set(middleware.OutcomeKey, metrics.OutcomeRejected)
		h.handleError(c, err)
		return
	}
	if res.Found {
		c.Set(middleware.OutcomeKey, metrics.OutcomeFound)
	} else {
		c.Set(middleware.OutcomeKey, metrics.OutcomeNoPath)
	}

	g := res.Grid
	path := res.Path
	if path == nil {
		path = []grid.Cell{}
	}
	c.JSON(http.StatusOK, solveResponse{
		Info: boardInfo{
			Rows:      g.Rows(),
			Cols:      g.Cols(),
			Start:     g.Start(),
			Goal:      g.Goal(),
			Obstacles: g.ObstacleCount(),
		},
		Board:     g.Layout(),
		Path:      path,
		Found:     res.Found,
		Overlay:   res.Overlay.Layout(),
		Nodes:     g.Graph().NodeCount(),
		Edges:     g.Graph().EdgeCount(),
		ElapsedMS: float64(res.Duration.Microseconds()) / 1000,
	})
}

func (h *SolveHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, grid.ErrInvalidConfiguration):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidConfig, err.Error())
	case errors.Is(err, grid.ErrMalformedLayout):
		respondError(c, http.StatusBadRequest, ErrCodeMalformedLayout, err.Error())
	case errors.Is(err, solver.ErrTooLarge):
		respondError(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, err.Error())
	default:
		h.log.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("solve failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
