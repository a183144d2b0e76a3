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
)

var runCmd = &cobra.Command{
	Use:   "run [grid.toml]",
	Short: "Run the search once and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	addGridSourceFlags(runCmd)
	runCmd.Flags().String("heuristic", "manhattan", "heuristic: manhattan or zero")
	runCmd.Flags().Bool("trace", false, "print one line per expansion")
	runCmd.Flags().Bool("no-history", false, "skip recording this run")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New()

	g, source, err := resolveGrid(cmd, args, cfg)
	if err != nil {
		return err
	}

	hname, _ := cmd.Flags().GetString("heuristic")
	h, err := search.ByName(hname)
	if err != nil {
		return err
	}

	trace, _ := cmd.Flags().GetBool("trace")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	printer.GridHeader(g, source)

	started := time.Now()
	res, closed, err := runSearch(ctx, g, h, trace, printer)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Fprint(os.Stdout, ui.RenderGrid(g, res.Path, closed))
	printer.RunSummary(res, elapsed)

	if noHist, _ := cmd.Flags().GetBool("no-history"); !noHist && cfg.History {
		recordRun(ctx, cfg, printer, history.Run{
			StartedAt:  started,
			Source:     source,
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
	return nil
}

// runSearch drives a stepper to completion, optionally tracing each
// expansion, and returns the result along with the final closed set for
// rendering.
func runSearch(ctx context.Context, g *grid.Grid, h search.Heuristic, trace bool, printer *ui.Printer) (search.Result, map[grid.Cell]bool, error) {
	stepper := search.NewStepper(g, h)
	var closed map[grid.Cell]bool
	for {
		if err := ctx.Err(); err != nil {
			return search.Result{}, nil, err
		}
		snap, ok := stepper.Step()
		if !ok {
			break
		}
		closed = snap.Closed
		if trace && !snap.Done {
			printer.TraceStep(snap)
		}
	}
	res, _ := stepper.Result()
	return res, closed, nil
}

// recordRun appends to the history store. Failures are warnings, never
// command failures.
func recordRun(ctx context.Context, cfg config.Config, printer *ui.Printer, run history.Run) {
	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		printer.Warn(fmt.Sprintf("history unavailable: %v", err))
		return
	}
	defer store.Close()
	if err := store.Record(ctx, run); err != nil {
		printer.Warn(fmt.Sprintf("history record failed: %v", err))
	}
}
