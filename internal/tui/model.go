// Package tui is a terminal driver for a simulation. It starts paused so cells
// can be flipped with the cursor, then ticks one generation per interval until
// the simulation halts.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{}

// Model is the Bubble Tea model for the terminal driver.
type Model struct {
	sim      core.Sim
	seed     int64
	interval time.Duration
	keys     KeyMap
	help     help.Model
	styles   Styles
	log      *slog.Logger

	cursorX, cursorY int
	paused           bool
	ticking          bool
	reported         bool
	status           string
}

// NewModel returns a paused Model driving sim at one generation per interval.
func NewModel(sim core.Sim, seed int64, interval time.Duration, log *slog.Logger) *Model {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	size := sim.Size()
	return &Model{
		sim:      sim,
		seed:     seed,
		interval: interval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
		log:      log,
		cursorX:  size.W / 2,
		cursorY:  size.H / 2,
		paused:   true,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tick() tea.Cmd {
	m.ticking = true
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) halted() bool {
	h, ok := m.sim.(core.Halter)
	return ok && h.Halted()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticking = false
		if m.paused || m.halted() {
			return m, nil
		}
		m.step()
		if m.paused || m.halted() {
			return m, nil
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.sim.Size()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorY = (m.cursorY - 1 + size.H) % size.H
	case key.Matches(msg, m.keys.Down):
		m.cursorY = (m.cursorY + 1) % size.H
	case key.Matches(msg, m.keys.Left):
		m.cursorX = (m.cursorX - 1 + size.W) % size.W
	case key.Matches(msg, m.keys.Right):
		m.cursorX = (m.cursorX + 1) % size.W
	case key.Matches(msg, m.keys.Flip):
		m.flip()
	case key.Matches(msg, m.keys.Step):
		m.step()
	case key.Matches(msg, m.keys.Reset):
		m.sim.Reset(m.seed)
		m.paused = true
		m.reported = false
		m.status = "reset"
		if err := ui.SimErr(m.sim); err != nil {
			m.status = err.Error()
			m.log.Error("reset failed", slog.Int64("seed", m.seed), slog.Any("err", err))
			break
		}
		m.log.Info("board reset", slog.Int64("seed", m.seed))
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused && !m.ticking && !m.halted() {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *Model) flip() {
	editor, ok := m.sim.(core.Editor)
	if !ok {
		m.status = "editing not supported"
		return
	}
	if err := editor.Toggle(m.cursorX, m.cursorY); err != nil {
		m.status = err.Error()
		m.log.Debug("toggle rejected", slog.Int("x", m.cursorX), slog.Int("y", m.cursorY), slog.Any("err", err))
		return
	}
	m.status = ""
}

func (m *Model) step() {
	if m.halted() {
		return
	}
	m.sim.Step()
	if err := ui.SimErr(m.sim); err != nil {
		m.status = err.Error()
		m.paused = true
		m.log.Error("step failed", slog.Any("err", err))
		return
	}
	if m.halted() && !m.reported {
		m.reported = true
		m.log.Info("loop detected", slog.String("banner", ui.LoopBanner(m.sim)))
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(ui.Title(m.sim)))
	b.WriteString("\n")
	b.WriteString(m.styles.Board.Render(m.renderBoard()))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	if banner := ui.LoopBanner(m.sim); banner != "" {
		b.WriteString(m.styles.Loop.Render(banner))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderBoard() string {
	size := m.sim.Size()
	cells := m.sim.Cells()
	live := m.styles.Alive
	if m.halted() {
		live = m.styles.Frozen
	}
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < size.W; x++ {
			glyph, style := "·", m.styles.Dead
			if cells[y*size.W+x] != 0 {
				glyph, style = "●", live
			}
			if x == m.cursorX && y == m.cursorY {
				style = m.styles.Cursor
			}
			b.WriteString(style.Render(glyph))
		}
	}
	return b.String()
}

func (m *Model) statusLine() string {
	state := "running"
	switch {
	case m.halted():
		state = "looped"
	case m.paused:
		state = "paused"
	}
	parts := []string{state, fmt.Sprintf("cursor %d,%d", m.cursorX, m.cursorY)}
	if p, ok := m.sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		for _, k := range []string{"turn", "live", "snapshots"} {
			if param, ok := snap.Lookup(k); ok {
				parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(param.Label), param.Value))
			}
		}
	}
	return strings.Join(parts, " · ")
}
