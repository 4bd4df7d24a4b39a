// Package tui runs the automaton in a terminal with bubbletea.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/history"
	"lifegrid/internal/input"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	frameInterval   = time.Second / 60
	historyCapacity = 240
	plotHeight      = 8
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Options configure a terminal session.
type Options struct {
	Spawner core.Spawner
	Palette render.Palette
	TPS     int
	Logger  *slog.Logger
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the bubbletea model driving one grid.
type Model struct {
	grid    *life.Grid
	spawner core.Spawner
	seeder  string

	term    *render.Terminal
	brush   input.Brush
	pacer   *core.FixedStep
	history *history.Recorder
	log     *slog.Logger

	paused   bool
	tickOnce bool
	showPlot bool
	width    int
	lastErr  error
}

// New builds the initial grid and returns a ready model.
func New(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Palette.Alive == nil || opts.Palette.Dead == nil {
		opts.Palette = render.DefaultPalette()
	}
	grid, err := opts.Spawner.Spawn()
	if err != nil {
		return Model{}, err
	}
	term := render.NewTerminal(opts.Palette)
	m := Model{
		grid:    grid,
		spawner: opts.Spawner,
		seeder:  opts.Spawner.Seeder,
		term:    term,
		pacer:   core.NewFixedStep(opts.TPS),
		history: history.NewRecorder(historyCapacity),
		log:     opts.Logger,
	}
	m.brush.Mapper = input.Mapper{
		CellSize: 1,
		ScaleX:   1 / float64(term.CellWidth()),
		Rows:     grid.Height(),
		Cols:     grid.Width(),
	}
	m.history.Record(grid.Generation(), grid.Population())
	return m, nil
}

// Grid exposes the current grid.
func (m Model) Grid() *life.Grid { return m.grid }

// Init starts the frame clock.
func (m Model) Init() tea.Cmd { return frame() }

// Update handles keys, mouse strokes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case frameMsg:
		if m.tickOnce || (!m.paused && m.pacer.ShouldStep()) {
			m.step()
		}
		return m, frame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "n":
		m.tickOnce = true
	case "r":
		m.respawn(m.spawner)
	case "s":
		m.spawner = m.spawner.Reseeded(time.Now().UnixNano())
		m.respawn(m.spawner)
	case "c":
		m.respawn(m.spawner.Cleared())
	case "+", "=":
		m.pacer.SetTPS(ui.StepTPS(m.pacer.TPS(), 1))
	case "-":
		m.pacer.SetTPS(ui.StepTPS(m.pacer.TPS(), -1))
	case "g":
		m.showPlot = !m.showPlot
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionRelease {
		m.brush.Lift()
		return
	}
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if _, err := m.brush.Move(m.grid, float64(msg.X), float64(msg.Y)); err != nil {
			m.lastErr = err
			m.log.Warn("toggle rejected", "x", msg.X, "y", msg.Y, "err", err)
		}
	}
}

func (m *Model) step() {
	m.grid.Tick()
	m.tickOnce = false
	m.history.Record(m.grid.Generation(), m.grid.Population())
}

func (m *Model) respawn(s core.Spawner) {
	grid, err := s.Spawn()
	if err != nil {
		m.lastErr = err
		m.log.Error("respawn failed", "seeder", s.Seeder, "err", err)
		return
	}
	m.grid = grid
	m.seeder = s.Seeder
	m.tickOnce = false
	m.brush.Lift()
	m.history = history.NewRecorder(historyCapacity)
	m.history.Record(grid.Generation(), grid.Population())
}

func (m Model) stats() ui.Stats {
	return ui.Stats{
		Generation: m.grid.Generation(),
		Population: m.grid.Population(),
		Size:       core.Size{W: m.grid.Width(), H: m.grid.Height()},
		TPS:        m.pacer.TPS(),
		Paused:     m.paused,
		Seeder:     m.seeder,
	}
}

// View draws the grid followed by the status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.term.Render(m.grid.RawCellBuffer()))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(strings.Join(m.stats().Lines(), "  ")))
	if m.showPlot && m.history.Len() > 1 {
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(m.history.Plot(m.plotWidth(), plotHeight, "population")))
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.lastErr.Error()))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(ui.KeyHelp))
	return b.String()
}

func (m Model) plotWidth() int {
	if m.width > 12 {
		return m.width - 12
	}
	return 0
}

// Run starts an interactive session and blocks until the user quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
