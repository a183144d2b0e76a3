package search

import (
	"fmt"

	"github.com/pathviz/starpath/internal/grid"
)

// Heuristic estimates the remaining cost between two cells. It must never
// return a negative value, and must never overestimate the true remaining
// cost for the search to stay optimal.
type Heuristic func(a, b grid.Cell) int

// Manhattan returns |Δrow| + |Δcol|. It is admissible and consistent on
// 4-connected unit-cost grids, and is the default heuristic.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero always estimates 0, degrading the search to uniform-cost expansion.
// Trivially admissible; useful as a reference and for testing.
func Zero(a, b grid.Cell) int {
	return 0
}

// ByName resolves a heuristic from its CLI name.
func ByName(name string) (Heuristic, error) {
	switch name {
	case "", "manhattan":
		return Manhattan, nil
	case "zero":
		return Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want manhattan or zero)", name)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
