package search

import "github.com/pathviz/starpath/internal/grid"

// Snapshot records one expansion step for external observation. The maps
// and slices are copies owned by the consumer; the engine never touches a
// snapshot after returning it.
type Snapshot struct {
	Step      int                // 1-based expansion counter
	Expanded  grid.Cell          // the cell finalized this step
	Open      map[grid.Cell]bool // frontier membership after the step
	Closed    map[grid.Cell]bool // finalized cells after the step
	PathSoFar []grid.Cell        // best known path from start to Expanded

	// Terminal fields, set only on the final snapshot of a run.
	Done  bool
	Found bool
	Path  []grid.Cell // start..goal inclusive when Found
}

// Result is the terminal outcome of a search.
type Result struct {
	Path     []grid.Cell // start..goal inclusive; nil when not found
	Cost     int         // edge count of Path
	Expanded int         // cells finalized during the run
	Found    bool
}

func copyCellSet(m map[grid.Cell]bool) map[grid.Cell]bool {
	out := make(map[grid.Cell]bool, len(m))
	for c := range m {
		out[c] = true
	}
	return out
}
