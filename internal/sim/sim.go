// Package sim runs the game machine headless with scripted input.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
	"github.com/vovakirdan/hero-dash/internal/game"
)

// ErrOptions is wrapped by every options validation failure.
var ErrOptions = errors.New("invalid simulation options")

// Hold is the direction held for the whole run.
type Hold int

const (
	HoldNone Hold = iota
	HoldLeft
	HoldRight
)

// String returns the flag spelling of the hold.
func (h Hold) String() string {
	switch h {
	case HoldLeft:
		return "left"
	case HoldRight:
		return "right"
	default:
		return "none"
	}
}

// ParseHold parses "left", "right" or "none" (empty means none).
func ParseHold(s string) (Hold, error) {
	switch s {
	case "", "none":
		return HoldNone, nil
	case "left":
		return HoldLeft, nil
	case "right":
		return HoldRight, nil
	}
	return HoldNone, fmt.Errorf("%w: unknown hold %q", ErrOptions, s)
}

// Options scripts a run.
type Options struct {
	Ticks     int     // machine ticks, including the one that starts the session
	DT        float64 // time-units per tick
	JumpEvery int     // jump on every Nth tick; 0 never jumps
	Hold      Hold
	Seed      int64
}

// Report summarizes a finished run.
type Report struct {
	Ticks     int
	State     game.State
	Hero      core.Vec2
	JumpCount int // jumps since the hero last stood on something
	Jumps     int // jumps performed over the run
	Enemies   int
	Platforms int
	DeathTick int // tick that ended the session, 0 when the hero survived
	Cause     game.Cause
}

// Run starts a session through the start button and feeds the scripted
// input until the ticks run out or the hero dies.
func Run(cfg config.Config, opts Options, logger *log.Logger) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, fmt.Errorf("%w: ticks must be positive, got %d", ErrOptions, opts.Ticks)
	}
	if opts.DT <= 0 {
		return Report{}, fmt.Errorf("%w: dt must be positive, got %v", ErrOptions, opts.DT)
	}
	if opts.JumpEvery < 0 {
		return Report{}, fmt.Errorf("%w: jump-every must not be negative, got %d", ErrOptions, opts.JumpEvery)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := game.NewMachine(cfg, rng, game.NopAudio{}, logger)

	var rep Report
	for i := 0; i < opts.Ticks; i++ {
		in := scriptedInput(opts, i)
		if i == 0 {
			in.ClickAt(cfg.Menu.Start.Rect().Center())
		}

		res := m.Tick(opts.DT, in)
		rep.Ticks++
		if res.State == game.StateDead {
			rep.DeathTick = rep.Ticks
			break
		}
	}

	rep.State = m.State()
	rep.Cause = m.LastCause()
	if w := m.World(); w != nil {
		rep.Hero = w.Hero.Pos
		rep.JumpCount = w.Hero.JumpCount
		rep.Jumps = w.Jumps()
		rep.Enemies = len(w.Enemies)
		rep.Platforms = len(w.Platforms)
	}
	return rep, nil
}

func scriptedInput(opts Options, tick int) core.InputFrame {
	in := core.NewInputFrame()
	if opts.JumpEvery > 0 && tick%opts.JumpEvery == 0 {
		in.Set(core.ActionJump)
	}
	switch opts.Hold {
	case HoldLeft:
		in.Set(core.ActionLeft)
	case HoldRight:
		in.Set(core.ActionRight)
	}
	return in
}
