package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/solver"
)

// report is the --format json shape; it mirrors the HTTP solve response.
type report struct {
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Start     grid.Cell   `json:"start"`
	Goal      grid.Cell   `json:"goal"`
	Obstacles int         `json:"obstacles"`
	Board     [][]int     `json:"board"`
	Path      []grid.Cell `json:"path"`
	Found     bool        `json:"found"`
	Overlay   [][]int     `json:"overlay"`
	Graph     []graphNode `json:"graph,omitempty"`
}

// graphNode is one adjacency entry of the --graph dump.
type graphNode struct {
	Node  grid.Cell   `json:"node"`
	Edges []grid.Cell `json:"edges"`
}

func graphNodes(gr *grid.Graph) []graphNode {
	out := make([]graphNode, 0, gr.NodeCount())
	for _, u := range gr.Nodes() {
		out = append(out, graphNode{Node: u, Edges: gr.Neighbors(u)})
	}
	return out
}

func writeResult(w io.Writer, res *solver.Result) error {
	if flagFmt == "json" {
		return writeJSON(w, res)
	}
	return writeText(w, res)
}

func writeJSON(w io.Writer, res *solver.Result) error {
	g := res.Grid
	path := res.Path
	if path == nil {
		path = []grid.Cell{}
	}
	rep := report{
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Start:     g.Start(),
		Goal:      g.Goal(),
		Obstacles: g.ObstacleCount(),
		Board:     g.Layout(),
		Path:      path,
		Found:     res.Found,
		Overlay:   res.Overlay.Layout(),
	}
	if flagGraph {
		rep.Graph = graphNodes(g.Graph())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeText(w io.Writer, res *solver.Result) error {
	_, err := fmt.Fprintf(w, "%s\n%s", res.Grid.Info(), res.Grid.String())
	if err != nil {
		return err
	}
	if flagGraph {
		if _, err = fmt.Fprintf(w, "\nGraph:\n\n%s", res.Grid.Graph().String()); err != nil {
			return err
		}
	}
	if !res.Found {
		return nil
	}
	_, err = fmt.Fprintf(w, "\nShortest path: %v\n\nBoard with Path:\n\n%s", res.Path, res.Overlay.String())
	return err
}
