package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/config"
	"github.com/pathviz/starpath/internal/search"
	"github.com/pathviz/starpath/internal/tui"
)

// tuiCmd launches the interactive visualizer.
var tuiCmd = &cobra.Command{
	Use:   "tui [grid.toml]",
	Short: "Launch the interactive visualizer",
	Long: `Launch the terminal visualizer. With a grid file argument the grid is
loaded from disk; otherwise a blank (or, with --generate, random) grid of
--rows by --cols is used. Walls, start, and goal are editable in place, and
runs animate one expansion per tick at an adjustable speed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	addGridSourceFlags(tuiCmd)
	tuiCmd.Flags().String("heuristic", "manhattan", "heuristic: manhattan or zero")
	tuiCmd.Flags().Int("speed", 0, "initial animation interval in ms (default from config)")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	g, _, err := resolveGrid(cmd, args, cfg)
	if err != nil {
		return err
	}

	hname, _ := cmd.Flags().GetString("heuristic")
	h, err := search.ByName(hname)
	if err != nil {
		return err
	}

	speed, _ := cmd.Flags().GetInt("speed")
	if speed <= 0 {
		speed = cfg.SpeedMS
	}

	p := tui.NewProgram(g, speed, h, hname)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
