// Package tui implements the interactive A* visualizer: a BubbleTea app
// that animates search snapshots at a user-controlled speed and lets the
// user edit walls, start, and goal between runs.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathviz/starpath/internal/grid"
	"github.com/pathviz/starpath/internal/search"
)

// Phase tracks what the visualizer is doing.
type Phase int

const (
	// PhaseEdit lets the user move the cursor and edit the grid.
	PhaseEdit Phase = iota
	// PhaseRun animates the search, one expansion per tick.
	PhaseRun
	// PhaseDone shows the terminal outcome until the user edits or reruns.
	PhaseDone
)

// Speed bounds for the animation tick.
const (
	minSpeed  = 10 * time.Millisecond
	maxSpeed  = time.Second
	speedStep = 10 * time.Millisecond
)

// Model is the BubbleTea model for the visualizer. The grid being edited is
// held as loose fields (dimensions, wall set, start, goal); a fresh
// grid.Grid is constructed for each run so every run revalidates.
type Model struct {
	rows, cols int
	walls      map[grid.Cell]bool
	start      grid.Cell
	goal       grid.Cell
	cursor     grid.Cell

	heuristic     search.Heuristic
	heuristicName string

	phase      Phase
	paused     bool
	speed      time.Duration
	stepper    *search.Stepper
	snap       search.Snapshot
	result     search.Result
	haveResult bool

	keys   KeyMap
	status string
	width  int
	height int
}

// NewModel builds a visualizer model seeded from g. speedMS is the initial
// animation interval; h may be nil for Manhattan.
func NewModel(g *grid.Grid, speedMS int, h search.Heuristic, heuristicName string) Model {
	walls := make(map[grid.Cell]bool, g.WallCount())
	for _, w := range g.Walls() {
		walls[w] = true
	}
	speed := time.Duration(speedMS) * time.Millisecond
	if speed < minSpeed {
		speed = minSpeed
	}
	if speed > maxSpeed {
		speed = maxSpeed
	}
	if h == nil {
		h = search.Manhattan
		heuristicName = "manhattan"
	}
	return Model{
		rows:          g.Rows(),
		cols:          g.Cols(),
		walls:         walls,
		start:         g.Start(),
		goal:          g.Goal(),
		cursor:        g.Start(),
		heuristic:     h,
		heuristicName: heuristicName,
		phase:         PhaseEdit,
		speed:         speed,
		keys:          DefaultKeyMap(),
	}
}

// Init is a no-op; ticking starts when a run starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.phase != PhaseRun {
			return m, nil
		}
		if !m.paused {
			m.advance()
		}
		if m.phase == PhaseRun {
			return m, tickCmd(m.speed)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1, 0), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1, 0), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(0, -1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(0, 1), nil

	case key.Matches(msg, m.keys.ToggleWall):
		m = m.backToEdit()
		m.toggleWall(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.SetStart):
		m = m.backToEdit()
		m.setStart(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.SetGoal):
		m = m.backToEdit()
		m.setGoal(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.ClearWalls):
		m = m.backToEdit()
		if m.phase == PhaseEdit {
			m.walls = make(map[grid.Cell]bool)
			m.status = "walls cleared"
		}
		return m, nil

	case key.Matches(msg, m.keys.Run):
		return m.startRun()

	case key.Matches(msg, m.keys.Pause):
		if m.phase == PhaseRun {
			m.paused = !m.paused
		}
		return m, nil
	case key.Matches(msg, m.keys.StepOnce):
		if m.phase == PhaseRun && m.paused {
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		m.speed = clampSpeed(m.speed - speedStep)
		return m, nil
	case key.Matches(msg, m.keys.Slower):
		m.speed = clampSpeed(m.speed + speedStep)
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.phase != PhaseEdit {
			m = m.abandonRun()
		}
		return m, nil
	}
	return m, nil
}

// startRun constructs the grid and begins animating. Construction errors
// show in the status line and the run is refused.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.phase == PhaseRun {
		return m, nil
	}
	g, err := grid.New(m.rows, m.cols, wallList(m.walls), m.start, m.goal)
	if err != nil {
		m.phase = PhaseEdit
		m.status = err.Error()
		return m, nil
	}
	m.stepper = search.NewStepper(g, m.heuristic)
	m.snap = search.Snapshot{}
	m.haveResult = false
	m.paused = false
	m.phase = PhaseRun
	m.status = ""
	return m, tickCmd(m.speed)
}

// advance pulls one expansion from the stepper.
func (m *Model) advance() {
	snap, ok := m.stepper.Step()
	if !ok {
		m.phase = PhaseDone
		return
	}
	m.snap = snap
	if snap.Done {
		m.phase = PhaseDone
		m.result, m.haveResult = m.stepper.Result()
		m.stepper = nil
	}
}

// abandonRun drops an in-flight or finished run and returns to editing.
func (m Model) abandonRun() Model {
	m.stepper = nil
	m.snap = search.Snapshot{}
	m.haveResult = false
	m.paused = false
	m.phase = PhaseEdit
	m.status = ""
	return m
}

// backToEdit returns to edit phase before applying an edit key. Edits during
// an animating run are ignored by keeping the run's state untouched there.
func (m Model) backToEdit() Model {
	if m.phase == PhaseDone {
		return m.abandonRun()
	}
	if m.phase == PhaseRun {
		// Editing mid-run is not allowed; esc first.
		return m
	}
	return m
}

func (m Model) moveCursor(dr, dc int) Model {
	next := grid.Cell{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if next.Row >= 0 && next.Row < m.rows && next.Col >= 0 && next.Col < m.cols {
		m.cursor = next
	}
	return m
}

func (m *Model) toggleWall(c grid.Cell) {
	if m.phase != PhaseEdit {
		return
	}
	if c == m.start || c == m.goal {
		m.status = "cannot wall the start or goal cell"
		return
	}
	if m.walls[c] {
		delete(m.walls, c)
	} else {
		m.walls[c] = true
	}
	m.status = ""
}

func (m *Model) setStart(c grid.Cell) {
	if m.phase != PhaseEdit {
		return
	}
	if c == m.goal {
		m.status = "start and goal must differ"
		return
	}
	if m.walls[c] {
		m.status = "start cannot sit on a wall"
		return
	}
	m.start = c
	m.status = ""
}

func (m *Model) setGoal(c grid.Cell) {
	if m.phase != PhaseEdit {
		return
	}
	if c == m.start {
		m.status = "start and goal must differ"
		return
	}
	if m.walls[c] {
		m.status = "goal cannot sit on a wall"
		return
	}
	m.goal = c
	m.status = ""
}

func clampSpeed(d time.Duration) time.Duration {
	if d < minSpeed {
		return minSpeed
	}
	if d > maxSpeed {
		return maxSpeed
	}
	return d
}

func wallList(walls map[grid.Cell]bool) []grid.Cell {
	out := make([]grid.Cell, 0, len(walls))
	for c := range walls {
		out = append(out, c)
	}
	return out
}
