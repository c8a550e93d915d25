package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hero-dash/internal/core"
	"github.com/vovakirdan/hero-dash/internal/game"
)

// helpHeight is the number of rows reserved below the play area.
const helpHeight = 1

// Model is the Bubble Tea model that drives a game.Machine.
type Model struct {
	machine *game.Machine
	canvas  *Canvas
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	now     func() time.Time

	input    core.InputFrame           // events gathered since the last tick
	held     map[core.Action]time.Time // last press of each direction
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the given machine. A nil logger discards output.
func NewModel(machine *game.Machine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = core.DefaultConfig().HoldWindow
	}

	world := machine.Config().Screen
	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		machine: machine,
		canvas:  NewCanvas(screen, world.Width, world.Height),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		now:     time.Now,
		input:   core.NewInputFrame(),
		held:    make(map[core.Action]time.Time),
	}
}

func playHeight(h int) int {
	return max(h-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Info("quit key pressed")
		m.quitting = true
		return m, tea.Quit
	}

	if a, ok := m.keys.direction(msg); ok {
		// A new direction cancels the opposite one at once
		delete(m.held, core.ActionLeft)
		delete(m.held, core.ActionRight)
		m.held[a] = m.now()
		return m, nil
	}

	buttons := m.machine.Buttons()
	switch m.machine.State() {
	case game.StateMenu:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.input.ClickAt(buttons.Start.Rect().Center())
		case key.Matches(msg, m.keys.Sound):
			m.input.ClickAt(buttons.Sound.Rect().Center())
		}

	case game.StatePlaying:
		if key.Matches(msg, m.keys.Jump) {
			m.input.Press(core.ActionJump)
		}
	}

	return m, nil
}

// handleMouse turns a left press inside the play area into a world click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.canvas.Screen().Height() {
		return m, nil
	}
	m.input.ClickAt(m.canvas.ToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Screen().Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one machine tick with the input gathered since the last one.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, t, m.config.TickRate)
	m.lastTick = t

	res := m.machine.Tick(dt, m.frameInput(t))
	m.input.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// frameInput merges the pending events with the directions still held at t.
func (m Model) frameInput(t time.Time) core.InputFrame {
	in := m.input.Clone()
	for a, pressed := range m.held {
		if t.Sub(pressed) > m.config.HoldWindow {
			delete(m.held, a)
			continue
		}
		in.Set(a)
	}
	return in
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.machine.Render(m.canvas)

	var b strings.Builder
	b.WriteString(RenderScreen(m.canvas.Screen()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Machine returns the driven machine.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// Run starts the Bubble Tea program for the given machine.
func Run(machine *game.Machine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(machine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	_, err := p.Run()
	return err
}
