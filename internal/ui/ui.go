package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/search"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes styled operator-facing output to stderr.
type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+"warning: "+reset+"%s\n", msg)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ "+reset+"%s\n", msg)
}

// GridHeader prints the grid dimensions and source before a run.
func (p *Printer) GridHeader(g *grid.Grid, source string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ grid"+reset+" %dx%d, %d wall(s), start %s, goal %s "+dim+"(%s)"+reset+"\n",
		g.Rows(), g.Cols(), g.WallCount(), g.Start(), g.Goal(), source)
}

// RunSummary prints the terminal outcome of a search.
func (p *Printer) RunSummary(res search.Result, elapsed time.Duration) {
	if res.Found {
		fmt.Fprintf(os.Stderr, green+bold+"✓ path found"+reset+" — cost %d, %d cell(s) expanded "+dim+"(%.1fms)"+reset+"\n",
			res.Cost, res.Expanded, float64(elapsed.Microseconds())/1000.0)
		return
	}
	fmt.Fprintf(os.Stderr, yellow+bold+"∅ no path"+reset+" — %d cell(s) expanded "+dim+"(%.1fms)"+reset+"\n",
		res.Expanded, float64(elapsed.Microseconds())/1000.0)
}

// TraceStep prints one line per expansion for `run --trace`.
func (p *Printer) TraceStep(snap search.Snapshot) {
	fmt.Fprintf(os.Stderr, dim+"step %4d"+reset+" expand %-9s open:%-4d closed:%d\n",
		snap.Step, snap.Expanded.String(), len(snap.Open), len(snap.Closed))
}

// ValidateResult reports the outcome of `starpath validate`.
func (p *Printer) ValidateResult(path string, reachable bool, goalDist int) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ grid %q is valid"+reset+"\n", path)
	if reachable {
		fmt.Fprintf(os.Stderr, "  goal reachable, shortest path cost %d\n", goalDist)
	} else {
		fmt.Fprintf(os.Stderr, "  "+yellow+"goal not reachable"+reset+" — searches will report no-path\n")
	}
}

// HistoryRow prints one run-history record.
func (p *Printer) HistoryRow(started time.Time, source string, rows, cols int, found bool, cost, expanded int, durationMS int64) {
	outcome := green + "found " + reset
	costStr := fmt.Sprintf("cost %-4d", cost)
	if !found {
		outcome = yellow + "nopath" + reset
		costStr = "         "
	}
	fmt.Fprintf(os.Stderr, "  %s  %3dx%-3d %s %s expanded %-5d %4dms  "+dim+"%s"+reset+"\n",
		started.Format("2006-01-02 15:04:05"), rows, cols, outcome, costStr, expanded, durationMS, source)
}
