package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/solver"
)

// errNoPath makes the CLI exit non-zero when the goal is unreachable.
var errNoPath = errors.New("no path found from initial to final position")

func newSolveCmd() *cobra.Command {
	var (
		rows, cols, obstacles int
		start, goal           string
		seed                  int64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a random board and print its shortest path",
		Example: `  gridpath solve --rows 5 --cols 8 --start 0,0 --goal "(4, 7)" --obstacles 12
  gridpath solve --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := cfg.Board
			req := solver.Request{
				Rows:      b.Rows,
				Cols:      b.Cols,
				Start:     cellFromPair(b.Start),
				Goal:      cellFromPair(b.Goal),
				Obstacles: b.Obstacles,
				Seed:      b.Seed,
			}

			flags := cmd.Flags()
			if flags.Changed("rows") {
				req.Rows = rows
			}
			if flags.Changed("cols") {
				req.Cols = cols
			}
			if flags.Changed("obstacles") {
				req.Obstacles = obstacles
			}
			if flags.Changed("seed") {
				req.Seed = seed
			}
			if flags.Changed("start") {
				c, err := parseCell(start)
				if err != nil {
					return err
				}
				req.Start = c
			}
			if flags.Changed("goal") {
				c, err := parseCell(goal)
				if err != nil {
					return err
				}
				req.Goal = c
			}

			return runSolve(cmd, req)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows R")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns C")
	cmd.Flags().StringVar(&start, "start", "", "Initial position as row,col")
	cmd.Flags().StringVar(&goal, "goal", "", "Final position as row,col")
	cmd.Flags().IntVar(&obstacles, "obstacles", 0, "Number of obstacles N (0 ≤ N ≤ R·C−2)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for obstacle placement (0 = random)")
	addGraphFlag(cmd)

	return cmd
}

// addGraphFlag registers --graph, which adds the node/edge listing to the output.
func addGraphFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagGraph, "graph", false, "Also print every node with its neighbors")
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Solve a board read from a YAML or JSON layout file",
		Long: `Solve a board read from a YAML or JSON file holding a 2D array of codes:
0 = empty, 1 = start, 2 = goal, -1 = obstacle, 3 = path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := config.ReadLayout(args[0])
			if err != nil {
				return err
			}
			return runSolve(cmd, solver.Request{Layout: layout})
		},
	}
	addGraphFlag(cmd)

	return cmd
}

// runSolve solves req and prints the result. Unreachable goals still print
// the board and then fail with errNoPath.
func runSolve(cmd *cobra.Command, req solver.Request) error {
	res, err := solver.New(log, 0).Solve(cmd.Context(), req)
	if err != nil {
		return err
	}
	if err := writeResult(cmd.OutOrStdout(), res); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !res.Found {
		return errNoPath
	}
	return nil
}
