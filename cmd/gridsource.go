package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/config"
	"github.com/pathviz/starpath/internal/grid"
)

// addGridSourceFlags registers the flags shared by commands that need a grid
// to operate on: run, tui, and generate.
func addGridSourceFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rows", 10, "grid rows when no grid file is given")
	cmd.Flags().Int("cols", 10, "grid columns when no grid file is given")
	cmd.Flags().Bool("generate", false, "generate random walls instead of a blank grid")
	cmd.Flags().Float64("density", 0, "wall density for --generate (default from config)")
	cmd.Flags().Int64("seed", 0, "seed for --generate (default: current time)")
}

// resolveGrid builds the grid a command operates on: from a positional grid
// file argument when present, otherwise from --generate or a blank
// --rows×--cols grid with start and goal in opposite corners. It returns the
// grid and a short source description for output and history.
func resolveGrid(cmd *cobra.Command, args []string, cfg config.Config) (*grid.Grid, string, error) {
	if len(args) == 1 {
		g, err := grid.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		return g, args[0], nil
	}

	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")

	if gen, _ := cmd.Flags().GetBool("generate"); gen {
		g, err := grid.Generate(generateRequest(cmd, cfg, rows, cols))
		if err != nil {
			return nil, "", err
		}
		return g, "generated", nil
	}

	g, err := grid.New(rows, cols, nil,
		grid.Cell{Row: 0, Col: 0},
		grid.Cell{Row: rows - 1, Col: cols - 1})
	if err != nil {
		return nil, "", fmt.Errorf("blank grid: %w", err)
	}
	return g, "blank", nil
}

// generateRequest assembles a GenerateRequest from flags, config defaults,
// and a time-based seed when none is given.
func generateRequest(cmd *cobra.Command, cfg config.Config, rows, cols int) grid.GenerateRequest {
	density := cfg.Density
	if cmd.Flags().Changed("density") {
		density, _ = cmd.Flags().GetFloat64("density")
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	return grid.GenerateRequest{
		Rows:    rows,
		Cols:    cols,
		Density: density,
		Seed:    seed,
	}
}
