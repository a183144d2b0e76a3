package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/config"
	"github.com/pathviz/starpath/internal/history"
	"github.com/pathviz/starpath/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent search runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	printer := ui.New()
	ctx := context.Background()

	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		printer.Info("no runs recorded yet")
		return nil
	}
	for _, r := range runs {
		printer.HistoryRow(r.StartedAt, r.Source, r.Rows, r.Cols, r.Found, r.PathCost, r.Expanded, r.DurationMS)
	}
	return nil
}
