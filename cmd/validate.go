package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/search"
	"github.com/pathviz/starpath/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <grid.toml>",
	Short: "Check a grid file and report goal reachability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.New()
		path := args[0]

		g, err := grid.Load(path)
		if err != nil {
			var igErr *grid.InvalidGridError
			if errors.As(err, &igErr) {
				printer.Error(fmt.Sprintf("grid %q is invalid (%s): %v", path, igErr.Category, igErr))
				return fmt.Errorf("validation failed")
			}
			return err
		}

		// Reachability is advisory: an unreachable goal is a valid grid
		// whose searches report no-path.
		dist, reachable := search.BreadthFirst(g)
		printer.ValidateResult(path, reachable, dist[g.Goal()])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
