package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathviz/starpath/internal/config"
	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/history"
	"github.com/pathviz/starpath/internal/search"
	"github.com/pathviz/starpath/internal/ui"
	"github.com/pathviz/starpath/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <grid.toml>",
	Short: "Re-run the search whenever the grid file changes",
	Long: `Watch a grid file and re-run the search on every edit, printing the
result each time. Useful for iterating on a grid in an editor. Stops on
interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("heuristic", "manhattan", "heuristic: manhattan or zero")
	watchCmd.Flags().Bool("no-history", false, "skip recording runs")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()
	path := args[0]

	hname, _ := cmd.Flags().GetString("heuristic")
	h, err := search.ByName(hname)
	if err != nil {
		return err
	}
	noHist, _ := cmd.Flags().GetBool("no-history")

	w, err := watch.NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// runOnce loads and searches; grid errors keep the watch alive so the
	// user can fix the file and save again.
	runOnce := func() {
		g, err := grid.Load(path)
		if err != nil {
			printer.Error(err.Error())
			return
		}
		printer.GridHeader(g, path)
		started := time.Now()
		res, err := search.Search(ctx, g, h)
		if err != nil {
			return // cancelled; the outer loop exits next
		}
		elapsed := time.Since(started)
		fmt.Fprint(os.Stdout, ui.RenderGrid(g, res.Path, nil))
		printer.RunSummary(res, elapsed)

		if !noHist && cfg.History {
			recordRun(ctx, cfg, printer, history.Run{
				StartedAt:  started,
				Source:     path,
				Rows:       g.Rows(),
				Cols:       g.Cols(),
				Walls:      g.WallCount(),
				Heuristic:  hname,
				Found:      res.Found,
				PathCost:   res.Cost,
				Expanded:   res.Expanded,
				DurationMS: elapsed.Milliseconds(),
			})
		}
	}

	runOnce()
	printer.Info(fmt.Sprintf("watching %s — edit and save to rerun, ctrl+c to stop", path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			printer.Info("grid changed — rerunning")
			runOnce()
		}
	}
}
