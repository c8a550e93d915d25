package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateDead
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Result is returned by Machine.Tick.
type Result struct {
	State State
	Quit  bool // the exit button was clicked
}

// Machine orchestrates menu, playing and dead, owns the current World and
// drives music and sound effects.
type Machine struct {
	cfg    config.Config
	rng    Rand
	audio  Audio
	logger *log.Logger

	state      State
	world      *World
	deathTimer float64
	lastCause  Cause

	soundOn          bool
	menuMusicStarted bool
	gameMusicStarted bool
}

// NewMachine creates a machine in the menu state.
// A nil audio is replaced by NopAudio and a nil logger discards output.
func NewMachine(cfg config.Config, rng Rand, audio Audio, logger *log.Logger) *Machine {
	if audio == nil {
		audio = NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		cfg:     cfg,
		rng:     rng,
		audio:   audio,
		logger:  logger,
		state:   StateMenu,
		soundOn: cfg.Audio.Enabled,
	}
}

// Tick advances the machine by dt time-units. Menu clicks are handled
// before the state update, so a start click also runs the first playing tick.
func (m *Machine) Tick(dt float64, in core.InputFrame) Result {
	var res Result

	if m.state == StateMenu {
		if p, ok := in.Click(); ok {
			res.Quit = m.click(p)
		}
	}

	switch m.state {
	case StateMenu:
		m.startMenuMusic()

	case StatePlaying:
		m.startGameMusic()

		out := m.world.Step(dt, in)
		if out.Jumped && m.soundOn {
			m.audio.PlaySound(SoundJump)
		}
		if out.Fatal != CauseNone {
			m.die(out.Fatal)
		}

	case StateDead:
		m.deathTimer += dt
		if m.deathTimer >= m.cfg.State.DeathDwell {
			m.setState(StateMenu)
			m.menuMusicStarted = false
		}
	}

	res.State = m.state
	return res
}

// click hit-tests the menu buttons. Returns true for the exit button.
func (m *Machine) click(p core.Vec2) bool {
	buttons := m.cfg.Menu
	switch {
	case buttons.Start.Rect().Contains(p):
		m.startSession()
		m.setState(StatePlaying)

	case buttons.Sound.Rect().Contains(p):
		m.soundOn = !m.soundOn
		if !m.soundOn {
			m.audio.StopMusic()
		} else {
			m.menuMusicStarted = false
		}
		m.logger.Info("sound toggled", "on", m.soundOn)

	case buttons.Exit.Rect().Contains(p):
		m.logger.Info("exit requested")
		return true
	}
	return false
}

// startSession replaces the world with a fresh one. Every session
// restarts the game track.
func (m *Machine) startSession() {
	m.world = NewWorld(m.cfg, m.rng, m.logger)
	m.lastCause = CauseNone
	m.gameMusicStarted = false
}

// die ends the session.
func (m *Machine) die(cause Cause) {
	if m.soundOn {
		m.audio.PlaySound(SoundHit)
	}
	m.lastCause = cause
	m.deathTimer = 0
	m.audio.StopMusic()
	m.logger.Info("hero died", "cause", cause, "tick", m.world.Ticks())
	m.setState(StateDead)
}

func (m *Machine) startMenuMusic() {
	if !m.soundOn || m.menuMusicStarted {
		return
	}
	m.audio.StopMusic()
	m.audio.PlayMusic(m.cfg.Audio.MenuTrack)
	m.menuMusicStarted = true
	m.gameMusicStarted = false
}

func (m *Machine) startGameMusic() {
	if !m.soundOn || m.gameMusicStarted {
		return
	}
	m.audio.StopMusic()
	m.audio.PlayMusic(m.cfg.Audio.GameTrack)
	m.gameMusicStarted = true
	m.menuMusicStarted = false
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.logger.Info("state change", "from", m.state, "to", s)
	m.state = s
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// World returns the current session, or nil before the first start.
func (m *Machine) World() *World {
	return m.world
}

// DeathTimer returns the time spent in the dead state.
func (m *Machine) DeathTimer() float64 {
	return m.deathTimer
}

// LastCause returns what ended the most recent session.
func (m *Machine) LastCause() Cause {
	return m.lastCause
}

// SoundOn reports the music and sounds toggle.
func (m *Machine) SoundOn() bool {
	return m.soundOn
}

// MenuMusicStarted reports whether menu music was started for the current menu visit.
func (m *Machine) MenuMusicStarted() bool {
	return m.menuMusicStarted
}

// GameMusicStarted reports whether game music was started for the current session.
func (m *Machine) GameMusicStarted() bool {
	return m.gameMusicStarted
}

// Buttons returns the menu button layout.
func (m *Machine) Buttons() config.MenuConfig {
	return m.cfg.Menu
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.Config {
	return m.cfg
}
