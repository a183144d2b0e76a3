package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pathviz/starpath/internal/grid"
)

// View renders title, grid, status line, and footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.titleView())
	b.WriteByte('\n')
	b.WriteString(m.gridView())
	b.WriteString(m.statusView())
	b.WriteByte('\n')
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) titleView() string {
	title := fmt.Sprintf("starpath — %dx%d · %s · %s", m.rows, m.cols, m.heuristicName, m.speed)
	return styleTitle.Render(title)
}

func (m Model) gridView() string {
	pathCells := make(map[grid.Cell]bool)
	if m.haveResult && m.result.Found {
		for _, c := range m.result.Path {
			pathCells[c] = true
		}
	}

	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.renderCell(grid.Cell{Row: r, Col: c}, pathCells))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCell picks glyph and style for one cell. The cursor inverts whatever
// glyph the cell would otherwise show.
func (m Model) renderCell(c grid.Cell, pathCells map[grid.Cell]bool) string {
	glyph, style := m.cellGlyph(c, pathCells)
	if m.phase == PhaseEdit && c == m.cursor {
		return styleCursor.Render(glyph)
	}
	return style.Render(glyph)
}

func (m Model) cellGlyph(c grid.Cell, pathCells map[grid.Cell]bool) (string, lipgloss.Style) {
	switch {
	case c == m.start:
		return glyphStart, styleStart
	case c == m.goal:
		return glyphGoal, styleGoal
	case m.walls[c]:
		return glyphWall, styleWall
	case pathCells[c]:
		return glyphPath, stylePath
	case m.phase != PhaseEdit && c == m.snap.Expanded && m.snap.Step > 0:
		return glyphCurrent, styleCurrent
	case m.phase != PhaseEdit && m.snap.Open[c]:
		return glyphOpen, styleOpen
	case m.phase != PhaseEdit && m.snap.Closed[c]:
		return glyphClosed, styleClosed
	default:
		return glyphFree, styleFree
	}
}

func (m Model) statusView() string {
	switch m.phase {
	case PhaseRun:
		state := "running"
		if m.paused {
			state = "paused"
		}
		return styleStatus.Render(fmt.Sprintf("%s · step %d · open %d · closed %d",
			state, m.snap.Step, len(m.snap.Open), len(m.snap.Closed)))
	case PhaseDone:
		if m.haveResult && m.result.Found {
			return styleStatusDone.Render(fmt.Sprintf("path found — cost %d, expanded %d · r to rerun",
				m.result.Cost, m.result.Expanded))
		}
		return styleStatusError.Render(fmt.Sprintf("no path — expanded %d · edit and rerun",
			m.result.Expanded))
	default:
		if m.status != "" {
			return styleStatusError.Render(m.status)
		}
		return styleStatus.Render("edit: move cursor, place walls, then run")
	}
}

func (m Model) footerView() string {
	bindings := []struct{ key, desc string }{
		{"↑↓←→", "move"},
		{"space", "wall"},
		{"s/g", "start/goal"},
		{"c", "clear"},
		{"r", "run"},
		{"p", "pause"},
		{"n", "step"},
		{"+/-", "speed"},
		{"esc", "edit"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, styleFooterKey.Render(kb.key)+" "+kb.desc)
	}
	return styleFooter.Render(strings.Join(parts, " · "))
}
