package game

import (
	"fmt"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// SpriteBlock is the sprite key of a single platform block.
const SpriteBlock = "block"

// Platform is a rigid horizontal strip of blocks drifting to the right.
// All blocks share one velocity and one vertical band.
type Platform struct {
	Blocks   []core.Rect
	Velocity float64

	screenW   float64
	tolerance float64
	motion    Motion
}

// NewPlatform builds a platform with a random block count, speed and band,
// laid out entirely left of the screen.
func NewPlatform(cfg config.Config, rng Rand) Platform {
	pc := cfg.Platform
	count := randInt(rng, pc.MinBlocks, pc.MaxBlocks)
	velocity := randUniform(rng, pc.MinSpeed, pc.MaxSpeed)
	y := float64(randInt(rng, pc.MinY, pc.MaxY))

	return newPlatform(cfg, count, velocity, y)
}

// newPlatform lays out count blocks whose centres start at
// -count*size and advance by one block size each.
func newPlatform(cfg config.Config, count int, velocity, centerY float64) Platform {
	if count < 1 {
		panic(fmt.Sprintf("game: platform needs at least one block, got %d", count))
	}

	size := cfg.Platform.BlockSize
	baseX := -float64(count) * size
	blocks := make([]core.Rect, count)
	for i := range blocks {
		center := core.Vec2{X: baseX + float64(i)*size, Y: centerY}
		blocks[i] = core.RectAround(center, size, size)
	}

	return Platform{
		Blocks:    blocks,
		Velocity:  velocity,
		screenW:   cfg.Screen.Width,
		tolerance: cfg.Platform.SupportTolerance,
		motion:    NewMotion(cfg.Physics),
	}
}

// Update moves every block by the shared velocity.
func (p *Platform) Update(dt float64) {
	dx := p.Velocity * p.motion.Scale(dt)
	for i := range p.Blocks {
		p.Blocks[i].X += dx
	}
}

// Top returns the shared top edge of the strip.
func (p Platform) Top() float64 {
	return p.Blocks[0].Top()
}

// CollidesWith reports whether r overlaps any block.
func (p Platform) CollidesWith(r core.Rect) bool {
	for _, b := range p.Blocks {
		if r.Intersects(b) {
			return true
		}
	}
	return false
}

// OnTop reports whether r is standing on some block: its bottom edge is
// within the support tolerance of the block's top and the horizontal
// extents overlap. Vertical velocity is not considered.
func (p Platform) OnTop(r core.Rect) bool {
	for _, b := range p.Blocks {
		if core.Abs(r.Bottom()-b.Top()) <= p.tolerance &&
			r.Right() > b.Left() &&
			r.Left() < b.Right() {
			return true
		}
	}
	return false
}

// IsOffScreen reports whether every block has passed the right edge.
func (p Platform) IsOffScreen() bool {
	for _, b := range p.Blocks {
		if b.Left() <= p.screenW {
			return false
		}
	}
	return true
}

// Draw paints each block.
func (p Platform) Draw(r Renderer) {
	for _, b := range p.Blocks {
		r.DrawSprite(SpriteBlock, b.Center())
	}
}
