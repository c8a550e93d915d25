package game

import (
	"strconv"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// Motion converts a tick's dt into the multiplier applied to per-frame
// increments (speeds, gravity, drift).
type Motion struct {
	FrameCoupled bool
	ReferenceFPS float64
}

// NewMotion builds a Motion from the physics config.
func NewMotion(p config.PhysicsConfig) Motion {
	return Motion{FrameCoupled: p.FrameCoupled, ReferenceFPS: p.ReferenceFPS}
}

// Scale returns 1 for frame-coupled physics and dt*ReferenceFPS otherwise.
func (m Motion) Scale(dt float64) float64 {
	if m.FrameCoupled {
		return 1
	}
	return dt * m.ReferenceFPS
}

// Body is the positional and animation state shared by the hero and enemies.
// Pos is the sprite centre.
type Body struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Frame  int    // index inside the current animation cycle
	Sprite string // current sprite key
}

// Rect returns the bounding box around Pos.
func (b Body) Rect() core.Rect {
	return core.RectAround(b.Pos, b.Width, b.Height)
}

// cycle advances Frame modulo n and selects the matching numbered sprite,
// e.g. prefix "hero_walk" with n=2 yields hero_walk1, hero_walk2, hero_walk1...
func (b *Body) cycle(prefix string, n int) {
	b.Frame = (b.Frame + 1) % n
	b.Sprite = prefix + strconv.Itoa(b.Frame+1)
}

// Draw paints the body's current sprite.
func (b Body) Draw(r Renderer) {
	r.DrawSprite(b.Sprite, b.Pos)
}
