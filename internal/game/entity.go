// Package game implements the Hero Dash simulation: a hero who runs and
// multi-jumps between drifting platform strips while dodging enemies.
//
// The package contains pure logic. Rendering, audio and input are reached
// through the small interfaces declared here, and the frame driver lives
// in the platform layer.
package game

import (
	"github.com/vovakirdan/hero-dash/internal/core"
)

// Updatable advances by one simulation tick of dt time-units.
type Updatable interface {
	Update(dt float64)
}

// Animatable steps its sprite frame on the animation cadence.
type Animatable interface {
	Animate()
}

// Drawable paints itself through a Renderer.
type Drawable interface {
	Draw(r Renderer)
}

var (
	_ Updatable  = (*Hero)(nil)
	_ Updatable  = (*Enemy)(nil)
	_ Updatable  = (*Platform)(nil)
	_ Animatable = (*Hero)(nil)
	_ Animatable = (*Enemy)(nil)
	_ Drawable   = Hero{}
	_ Drawable   = Enemy{}
	_ Drawable   = Platform{}
)

// Renderer is the painting surface used by the render pass.
// Positions and rectangles are in world pixels.
type Renderer interface {
	DrawRect(r core.Rect, c core.Color)
	DrawText(text string, center core.Vec2, c core.Color)
	DrawSprite(key string, center core.Vec2)
}

// Rand is the random source used for entity construction and enemy idling.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randUniform returns a uniform float in [lo, hi).
func randUniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Sound effect identifiers passed to Audio.PlaySound.
const (
	SoundJump = "jump"
	SoundHit  = "hit"
)

// Audio plays fire-and-forget effects and one music track at a time.
type Audio interface {
	PlaySound(id string)
	PlayMusic(track string)
	StopMusic()
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlaySound(string) {}
func (NopAudio) PlayMusic(string) {}
func (NopAudio) StopMusic()       {}
