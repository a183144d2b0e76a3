package ui

import (
	"strings"

	"github.com/pathviz/starpath/internal/grid"
)

// Cell glyphs for ASCII grid rendering.
const (
	glyphStart   = 'S'
	glyphGoal    = 'G'
	glyphWall    = '█'
	glyphPath    = '*'
	glyphVisited = '+'
	glyphFree    = '·'
)

// RenderGrid draws g as an ASCII diagram, one rune per cell separated by
// spaces: S/G for start and goal, █ walls, * cells on path, + other visited
// cells, · free cells. path and visited may be nil.
func RenderGrid(g *grid.Grid, path []grid.Cell, visited map[grid.Cell]bool) string {
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(gridGlyph(g, grid.Cell{Row: r, Col: c}, onPath, visited))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func gridGlyph(g *grid.Grid, c grid.Cell, onPath, visited map[grid.Cell]bool) rune {
	switch {
	case c == g.Start():
		return glyphStart
	case c == g.Goal():
		return glyphGoal
	case g.IsBlocked(c):
		return glyphWall
	case onPath[c]:
		return glyphPath
	case visited[c]:
		return glyphVisited
	default:
		return glyphFree
	}
}
