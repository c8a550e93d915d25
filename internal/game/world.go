package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// Cause identifies what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CausePlatform
	CauseEnemy
)

// String returns the cause name used in logs.
func (c Cause) String() string {
	switch c {
	case CausePlatform:
		return "platform"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// StepOutcome reports the side effects of one World.Step.
type StepOutcome struct {
	Jumped bool  // the hero jumped this tick
	Fatal  Cause // CauseNone unless the hero was killed
}

// World is one playing session: the hero, the live enemies and platforms,
// and the spawn and animation timers.
type World struct {
	Hero      Hero
	Enemies   []Enemy
	Platforms []Platform

	cfg       config.Config
	rng       Rand
	logger    *log.Logger
	motion    Motion
	spawner   Spawner
	animTimer float64
	ticks     int
	jumps     int
}

// NewWorld starts a fresh session with a new hero and no enemies or platforms.
func NewWorld(cfg config.Config, rng Rand, logger *log.Logger) *World {
	return &World{
		Hero:      NewHero(cfg),
		Enemies:   make([]Enemy, 0, 4),
		Platforms: make([]Platform, 0, 4),
		cfg:       cfg,
		rng:       rng,
		logger:    logger,
		motion:    NewMotion(cfg.Physics),
		spawner:   NewSpawner(cfg.Spawn),
	}
}

// Step advances the session by one tick. The order is fixed:
// jump events (one per press), hero motion, platform drift, platform collision (fatal),
// platform support, gravity, enemy motion, enemy collision (fatal),
// spawning, animation and pruning. A fatal collision ends the tick at once.
func (w *World) Step(dt float64, in core.InputFrame) StepOutcome {
	var out StepOutcome
	w.ticks++

	for n := in.Presses(core.ActionJump); n > 0; n-- {
		if !w.Hero.Jump() {
			break
		}
		out.Jumped = true
		w.jumps++
	}

	w.Hero.Steer(in)
	w.Hero.Update(dt)

	for i := range w.Platforms {
		w.Platforms[i].Update(dt)
	}

	heroRect := w.Hero.Rect()
	for _, p := range w.Platforms {
		if p.CollidesWith(heroRect) && !p.OnTop(heroRect) {
			out.Fatal = CausePlatform
			return out
		}
	}

	supported := false
	for _, p := range w.Platforms {
		if p.OnTop(heroRect) {
			w.Hero.Land(p.Top())
			supported = true
			break
		}
	}

	if !supported && !w.Hero.Grounded() {
		w.Hero.VY += w.cfg.Physics.Gravity * w.motion.Scale(dt)
	}

	for i := range w.Enemies {
		w.Enemies[i].Update(dt)
	}

	heroRect = w.Hero.Rect()
	for _, e := range w.Enemies {
		if e.CollidesWith(heroRect) {
			out.Fatal = CauseEnemy
			return out
		}
	}

	w.spawn(dt)
	w.animate(dt)
	w.prune()

	return out
}

// spawn appends whatever the spawner reports as due.
func (w *World) spawn(dt float64) {
	enemyDue, platformDue := w.spawner.Advance(dt)
	if enemyDue {
		e := NewEnemy(w.cfg, w.rng)
		w.Enemies = append(w.Enemies, e)
		w.logger.Debug("enemy spawned", "tick", w.ticks, "speed", e.Speed)
	}
	if platformDue {
		p := NewPlatform(w.cfg, w.rng)
		w.Platforms = append(w.Platforms, p)
		w.logger.Debug("platform spawned", "tick", w.ticks, "blocks", len(p.Blocks), "velocity", p.Velocity, "top", p.Top())
	}
}

// animate steps every sprite once per animation delay.
func (w *World) animate(dt float64) {
	w.animTimer += dt
	if w.animTimer < w.cfg.Animation.Delay {
		return
	}
	w.Hero.Animate()
	for i := range w.Enemies {
		w.Enemies[i].Animate()
	}
	w.animTimer = 0
}

// prune drops enemies and platforms that left the screen.
func (w *World) prune() {
	enemies, platforms := len(w.Enemies), len(w.Platforms)
	w.Enemies = prune(w.Enemies)
	w.Platforms = prune(w.Platforms)

	if removed := enemies - len(w.Enemies) + platforms - len(w.Platforms); removed > 0 {
		w.logger.Debug("pruned off-screen entities", "tick", w.ticks, "count", removed)
	}
}

// Spawner returns a copy of the spawn timers.
func (w *World) Spawner() Spawner {
	return w.spawner
}

// Ticks returns the number of steps taken in this session.
func (w *World) Ticks() int {
	return w.ticks
}

// Jumps returns the number of jumps performed in this session.
func (w *World) Jumps() int {
	return w.jumps
}

// Draw paints the hero, then enemies, then platforms.
func (w *World) Draw(r Renderer) {
	w.Hero.Draw(r)
	for _, e := range w.Enemies {
		e.Draw(r)
	}
	for _, p := range w.Platforms {
		p.Draw(r)
	}
}
