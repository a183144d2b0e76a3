package grid

import (
	"fmt"
	"math/rand"
)

// maxDensity caps wall density so generation cannot brick the whole grid.
const maxDensity = 0.9

// GenerateRequest holds the inputs for random grid generation.
type GenerateRequest struct {
	Rows    int
	Cols    int
	Density float64 // fraction of cells turned into walls, clamped to [0, 0.9]
	Seed    int64   // same seed produces the same grid
}

// Generate produces a random grid: walls scattered at the requested density,
// start at the top-left corner and goal at the bottom-right. If the scatter
// happens to disconnect start from goal, walls along a row-then-column
// corridor between them are removed, so the result is always solvable.
// Generation is deterministic for a given request.
func Generate(req GenerateRequest) (*Grid, error) {
	if req.Rows <= 0 || req.Cols <= 0 {
		return nil, fmt.Errorf("generate: %w (%dx%d)", ErrBadDimensions, req.Rows, req.Cols)
	}
	if req.Rows*req.Cols < 2 {
		return nil, fmt.Errorf("generate: grid too small for distinct start and goal (%dx%d)", req.Rows, req.Cols)
	}

	density := req.Density
	if density < 0 {
		density = 0
	}
	if density > maxDensity {
		density = maxDensity
	}

	start := Cell{Row: 0, Col: 0}
	goal := Cell{Row: req.Rows - 1, Col: req.Cols - 1}

	rng := rand.New(rand.NewSource(req.Seed))
	wallSet := make(map[Cell]bool)
	for r := 0; r < req.Rows; r++ {
		for c := 0; c < req.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if cell == start || cell == goal {
				continue
			}
			if rng.Float64() < density {
				wallSet[cell] = true
			}
		}
	}

	if !connected(req.Rows, req.Cols, wallSet, start, goal) {
		carveCorridor(wallSet, start, goal)
	}

	walls := make([]Cell, 0, len(wallSet))
	for c := range wallSet {
		walls = append(walls, c)
	}
	return New(req.Rows, req.Cols, walls, start, goal)
}

// connected reports whether goal is reachable from start over non-wall cells,
// via breadth-first traversal of the raw wall set. It runs before the Grid
// exists, so it cannot use the search package.
func connected(rows, cols int, walls map[Cell]bool, start, goal Cell) bool {
	seen := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		for _, d := range neighborOffsets {
			n := Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
				continue
			}
			if walls[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

// carveCorridor removes walls along the straight row-then-column path from
// start to goal.
func carveCorridor(walls map[Cell]bool, start, goal Cell) {
	step := func(from, to int) int {
		if to > from {
			return 1
		}
		return -1
	}
	cur := start
	for cur.Row != goal.Row {
		cur.Row += step(cur.Row, goal.Row)
		delete(walls, cur)
	}
	for cur.Col != goal.Col {
		cur.Col += step(cur.Col, goal.Col)
		delete(walls, cur)
	}
}
