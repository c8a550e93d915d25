package game

import (
	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// Hero sprite keys.
const (
	SpriteHeroJump = "hero_jump"
	heroWalkPrefix = "hero_walk"
	heroIdlePrefix = "hero_idle"
)

// MotionState is the hero's derived animation state.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionWalking
	MotionJumping
)

// String returns the state name.
func (s MotionState) String() string {
	switch s {
	case MotionWalking:
		return "walking"
	case MotionJumping:
		return "jumping"
	default:
		return "idle"
	}
}

// Hero is the player-controlled entity.
type Hero struct {
	Body
	VX, VY    float64
	JumpCount int

	speed        float64
	jumpStrength float64
	maxJumps     int
	groundY      float64
	motion       Motion
}

// NewHero places a fresh hero on the ground line.
func NewHero(cfg config.Config) Hero {
	return Hero{
		Body: Body{
			Pos:    core.Vec2{X: cfg.Hero.StartX, Y: cfg.GroundY()},
			Width:  cfg.Hero.Width,
			Height: cfg.Hero.Height,
			Sprite: heroIdlePrefix + "1",
		},
		speed:        cfg.Physics.Speed,
		jumpStrength: cfg.Physics.JumpStrength,
		maxJumps:     cfg.Physics.MaxJumps,
		groundY:      cfg.GroundY(),
		motion:       NewMotion(cfg.Physics),
	}
}

// Steer sets the horizontal velocity from the held directions.
// Right wins when both are held; no input stops the hero immediately.
func (h *Hero) Steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRight):
		h.VX = h.speed
	case in.Has(core.ActionLeft):
		h.VX = -h.speed
	default:
		h.VX = 0
	}
}

// Update integrates position and applies the ground clamp.
func (h *Hero) Update(dt float64) {
	s := h.motion.Scale(dt)
	h.Pos.X += h.VX * s
	h.Pos.Y += h.VY * s

	if h.Pos.Y >= h.groundY {
		h.Pos.Y = h.groundY
		h.VY = 0
		h.JumpCount = 0
	}
}

// Jump applies the jump impulse if jumps remain. Mid-air jumps are allowed
// up to the configured maximum. Returns whether the jump happened.
func (h *Hero) Jump() bool {
	if h.JumpCount >= h.maxJumps {
		return false
	}
	h.VY = h.jumpStrength
	h.JumpCount++
	h.Sprite = SpriteHeroJump
	return true
}

// Land stands the hero on a surface whose top edge is at top.
func (h *Hero) Land(top float64) {
	h.Pos.Y = top - h.Height/2
	h.VY = 0
	h.JumpCount = 0
}

// Grounded reports whether the hero stands on the ground line.
func (h Hero) Grounded() bool {
	return h.Pos.Y >= h.groundY
}

// MotionState derives the animation state from the current velocity.
func (h Hero) MotionState() MotionState {
	switch {
	case h.VY != 0:
		return MotionJumping
	case h.VX != 0:
		return MotionWalking
	default:
		return MotionIdle
	}
}

// Animate selects the next sprite for the current motion state.
func (h *Hero) Animate() {
	switch h.MotionState() {
	case MotionJumping:
		h.Sprite = SpriteHeroJump
	case MotionWalking:
		h.cycle(heroWalkPrefix, 2)
	default:
		h.cycle(heroIdlePrefix, 3)
	}
}
