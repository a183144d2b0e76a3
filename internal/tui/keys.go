package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the visualizer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ToggleWall key.Binding
	SetStart   key.Binding
	SetGoal    key.Binding
	ClearWalls key.Binding
	Run        key.Binding
	Pause      key.Binding
	StepOnce   key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		ToggleWall: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "wall"),
		),
		SetStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		SetGoal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "goal"),
		),
		ClearWalls: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		StepOnce: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
