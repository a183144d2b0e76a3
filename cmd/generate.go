package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/config"
	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate <out.toml>",
	Short: "Generate a random grid file",
	Long: `Generate a random solvable grid and write it as a TOML grid file.
The same --seed always produces the same grid; without --seed the current
time is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int("rows", 10, "grid rows")
	generateCmd.Flags().Int("cols", 10, "grid columns")
	generateCmd.Flags().Float64("density", 0, "wall density (default from config)")
	generateCmd.Flags().Int64("seed", 0, "generation seed (default: current time)")
	generateCmd.Flags().Bool("force", false, "overwrite an existing file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()
	path := args[0]

	if force, _ := cmd.Flags().GetBool("force"); !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")
	req := generateRequest(cmd, cfg, rows, cols)

	g, err := grid.Generate(req)
	if err != nil {
		return err
	}
	if err := grid.Save(path, g); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, ui.RenderGrid(g, nil, nil))
	printer.Success(fmt.Sprintf("wrote %dx%d grid with %d wall(s) to %s (seed %d)",
		g.Rows(), g.Cols(), g.WallCount(), path, req.Seed))
	return nil
}
