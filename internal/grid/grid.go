// Package grid provides the immutable 2D grid model for pathfinding:
// cells, blocked-cell sets, bounds and adjacency queries, TOML grid files,
// and seeded random grid generation.
package grid

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds indicates a cell outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrStartIsGoal indicates the start and goal cells coincide.
	ErrStartIsGoal = errors.New("start and goal must differ")
	// ErrCellBlocked indicates the start or goal sits on a wall.
	ErrCellBlocked = errors.New("start and goal must not be walls")
)

// Cell identifies one grid square by row and column.
type Cell struct {
	Row int
	Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Category classifies an InvalidGridError for programmatic handling.
type Category string

const (
	// CatDimensions indicates a non-positive dimension.
	CatDimensions Category = "dimensions"
	// CatBounds indicates a cell outside the grid.
	CatBounds Category = "bounds"
	// CatStartGoal indicates coinciding start and goal.
	CatStartGoal Category = "start_goal"
	// CatBlocked indicates a start or goal placed on a wall.
	CatBlocked Category = "blocked"
)

// InvalidGridError records a construction problem with the field and cell
// that caused it.
type InvalidGridError struct {
	Category Category
	Field    string // "rows", "cols", "start", "goal", or "walls"
	Cell     Cell   // offending cell, where applicable
	Err      error
}

// Error returns a human-readable string including the offending field.
func (e *InvalidGridError) Error() string {
	if e.Field == "rows" || e.Field == "cols" {
		return e.Field + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Cell, e.Err)
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *InvalidGridError) Unwrap() error {
	return e.Err
}

// Grid is an immutable rows×cols grid with a set of blocked cells and
// designated start and goal cells. All methods are pure queries.
type Grid struct {
	rows    int
	cols    int
	blocked map[Cell]bool
	start   Cell
	goal    Cell
}

// neighborOffsets is the fixed 4-connected expansion order: right, down,
// left, up. Searches rely on this order for reproducible output.
var neighborOffsets = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// New constructs a Grid, validating the full invariant set: positive
// dimensions, start and goal in bounds and distinct, no wall under start or
// goal, and every wall in bounds. Duplicate walls are deduplicated. The
// returned error, if any, is an *InvalidGridError.
func New(rows, cols int, walls []Cell, start, goal Cell) (*Grid, error) {
	if rows <= 0 {
		return nil, &InvalidGridError{Category: CatDimensions, Field: "rows", Err: ErrBadDimensions}
	}
	if cols <= 0 {
		return nil, &InvalidGridError{Category: CatDimensions, Field: "cols", Err: ErrBadDimensions}
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make(map[Cell]bool, len(walls)),
		start:   start,
		goal:    goal,
	}

	if !g.InBounds(start) {
		return nil, &InvalidGridError{Category: CatBounds, Field: "start", Cell: start, Err: ErrOutOfBounds}
	}
	if !g.InBounds(goal) {
		return nil, &InvalidGridError{Category: CatBounds, Field: "goal", Cell: goal, Err: ErrOutOfBounds}
	}
	if start == goal {
		return nil, &InvalidGridError{Category: CatStartGoal, Field: "start", Cell: start, Err: ErrStartIsGoal}
	}

	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, &InvalidGridError{Category: CatBounds, Field: "walls", Cell: w, Err: ErrOutOfBounds}
		}
		g.blocked[w] = true
	}
	if g.blocked[start] {
		return nil, &InvalidGridError{Category: CatBlocked, Field: "start", Cell: start, Err: ErrCellBlocked}
	}
	if g.blocked[goal] {
		return nil, &InvalidGridError{Category: CatBlocked, Field: "goal", Cell: goal, Err: ErrCellBlocked}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the designated start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the designated goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsBlocked reports whether c is a wall. Out-of-bounds cells are not walls;
// use InBounds for bounds checks.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.blocked[c]
}

// Walls returns a sorted copy of the blocked cells (row-major order).
func (g *Grid) Walls() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for c := range g.blocked {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// WallCount returns the number of blocked cells.
func (g *Grid) WallCount() int { return len(g.blocked) }

// Neighbors returns the traversable 4-connected neighbors of c, excluding
// out-of-bounds and blocked cells, in the order right, down, left, up.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) && !g.blocked[n] {
			out = append(out, n)
		}
	}
	return out
}
