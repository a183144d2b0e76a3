package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/search"
)

// Program is an alias for tea.Program, exposed so callers don't need to
// import bubbletea directly.
type Program = tea.Program

// NewProgram creates the visualizer program for g, using the alternate
// screen buffer. speedMS is the initial animation interval and h the
// heuristic (nil for Manhattan).
func NewProgram(g *grid.Grid, speedMS int, h search.Heuristic, heuristicName string, opts ...tea.ProgramOption) *Program {
	model := NewModel(g, speedMS, h, heuristicName)
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// WithOutput returns a program option that directs TUI output to the given
// writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
