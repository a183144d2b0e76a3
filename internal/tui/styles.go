package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // cyan: frontier/accent
	colorAccent     = lipgloss.Color("#FFD700") // gold: current expansion
	colorSuccess    = lipgloss.Color("#00E676") // green: path/start
	colorDanger     = lipgloss.Color("#FF5252") // red: errors/goal
	colorMuted      = lipgloss.Color("#636363") // gray: free cells
	colorMutedLight = lipgloss.Color("#8C8C8C") // lighter gray: normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // off-white: primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // status bar bg
	colorSurfaceDim = lipgloss.Color("#181825") // footer bg
	colorBlue       = lipgloss.Color("#5B8DEF") // closed cells
)

// Cell glyphs. One rune per cell, space separated, so the grid stays square
// in most terminal fonts.
const (
	glyphFree    = "·"
	glyphWall    = "█"
	glyphOpen    = "○"
	glyphClosed  = "●"
	glyphPath    = "◆"
	glyphCurrent = "◉"
	glyphStart   = "S"
	glyphGoal    = "G"
)

// Cell styles.
var (
	styleFree    = lipgloss.NewStyle().Foreground(colorMuted)
	styleWall    = lipgloss.NewStyle().Foreground(colorMutedLight)
	styleOpen    = lipgloss.NewStyle().Foreground(colorPrimary)
	styleClosed  = lipgloss.NewStyle().Foreground(colorBlue)
	stylePath    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleCurrent = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleStart   = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleGoal    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleCursor  = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// Chrome styles.
var (
	styleTitle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true).
				Padding(0, 1)

	styleStatusDone = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true).
			Padding(0, 1)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Padding(0, 1)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)
