package game

import (
	"testing"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

func TestNewPlatformLayout(t *testing.T) {
	cfg := config.Default()
	// count = 3+2, velocity = 1 + 2*0.5, y = 0+100
	rng := &scriptedRand{ints: []int{2, 100}, floats: []float64{0.5}}

	p := NewPlatform(cfg, rng)

	if len(p.Blocks) != 5 {
		t.Fatalf("block count = %d, want 5", len(p.Blocks))
	}
	if p.Velocity != 2 {
		t.Errorf("Velocity = %v, want 2", p.Velocity)
	}
	for i, b := range p.Blocks {
		c := b.Center()
		wantX := -160 + float64(i)*32
		if c.X != wantX || c.Y != 100 {
			t.Errorf("block %d centre = %s, want (%v, 100)", i, describe(c), wantX)
		}
		if b.W != 32 || b.H != 32 {
			t.Errorf("block %d size = %vx%v, want 32x32", i, b.W, b.H)
		}
	}
	if p.Top() != 84 {
		t.Errorf("Top = %v, want 84", p.Top())
	}
}

func TestNewPlatformRanges(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name      string
		rng       *scriptedRand
		wantCount int
	}{
		{"minimum", &scriptedRand{ints: []int{0, 0}, floats: []float64{0}}, 3},
		{"maximum", &scriptedRand{ints: []int{100, 1000}, floats: []float64{0.999}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlatform(cfg, tt.rng)
			if len(p.Blocks) != tt.wantCount {
				t.Errorf("block count = %d, want %d", len(p.Blocks), tt.wantCount)
			}
			if p.Velocity < 1 || p.Velocity >= 3 {
				t.Errorf("Velocity = %v, want within [1, 3)", p.Velocity)
			}
			y := p.Blocks[0].Center().Y
			if y < 0 || y > 420 {
				t.Errorf("band centre = %v, want within [0, 420]", y)
			}
		})
	}
}

func TestNewPlatformPanicsWithoutBlocks(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a zero-block platform")
		}
	}()
	newPlatform(config.Default(), 0, 1, 100)
}

func TestPlatformBlocksMoveTogether(t *testing.T) {
	p := newPlatform(config.Default(), 4, 2.5, 200)
	before := make([]float64, len(p.Blocks))
	for i, b := range p.Blocks {
		before[i] = b.X
	}

	p.Update(1.0 / 60)

	for i, b := range p.Blocks {
		if b.X-before[i] != 2.5 {
			t.Errorf("block %d moved by %v, want 2.5", i, b.X-before[i])
		}
		if b.Y != p.Blocks[0].Y {
			t.Errorf("block %d left the shared band", i)
		}
	}
}

func TestPlatformOffScreenWhenTrailingBlockPasses(t *testing.T) {
	p := newPlatform(config.Default(), 5, 2.0, 100)

	// Trailing block starts with its left edge at -176
	for i := 0; i < 728; i++ {
		p.Update(1.0 / 60)
	}
	if p.Blocks[0].Left() != 1280 {
		t.Fatalf("trailing block left = %v, want 1280", p.Blocks[0].Left())
	}
	if p.IsOffScreen() {
		t.Error("platform with a block left edge at 1280 should still be on screen")
	}

	p.Update(1.0 / 60)
	if !p.IsOffScreen() {
		t.Error("platform should be off screen once every block left edge passes 1280")
	}

	// Repeated queries on an unmoved platform agree and move nothing
	left := p.Blocks[0].Left()
	if !p.IsOffScreen() || p.Blocks[0].Left() != left {
		t.Error("IsOffScreen should be a pure query")
	}
}

func TestPlatformOnTop(t *testing.T) {
	p := newPlatform(config.Default(), 3, 1, 0)
	p = shiftPlatform(p, core.Vec2{X: 200, Y: 300}) // blocks span x 184..280, top 284

	tests := []struct {
		name   string
		center core.Vec2
		want   bool
	}{
		{"resting exactly", core.Vec2{X: 220, Y: 252}, true},
		{"sunk within tolerance", core.Vec2{X: 220, Y: 262}, true},
		{"hovering within tolerance", core.Vec2{X: 220, Y: 242}, true},
		{"too deep", core.Vec2{X: 220, Y: 263}, false},
		{"too high", core.Vec2{X: 220, Y: 241}, false},
		{"no horizontal overlap", core.Vec2{X: 100, Y: 252}, false},
		{"touching left edge only", core.Vec2{X: 160, Y: 252}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.RectAround(tt.center, 48, 64)
			if got := p.OnTop(r); got != tt.want {
				t.Errorf("OnTop(%s) = %v, want %v", describe(tt.center), got, tt.want)
			}
		})
	}
}

func TestPlatformCollidesWith(t *testing.T) {
	p := newPlatform(config.Default(), 3, 1, 0)
	p = shiftPlatform(p, core.Vec2{X: 200, Y: 300})

	if !p.CollidesWith(core.RectAround(core.Vec2{X: 250, Y: 300}, 48, 64)) {
		t.Error("overlapping rect should collide")
	}
	if p.CollidesWith(core.RectAround(core.Vec2{X: 250, Y: 252}, 48, 64)) {
		t.Error("rect resting exactly on the top edge should not collide")
	}
	if p.CollidesWith(core.RectAround(core.Vec2{X: 600, Y: 300}, 48, 64)) {
		t.Error("distant rect should not collide")
	}
}

func TestPlatformDrawsEveryBlock(t *testing.T) {
	p := newPlatform(config.Default(), 6, 1, 50)
	r := &recordingRenderer{}

	p.Draw(r)

	if len(r.sprites) != 6 {
		t.Fatalf("drew %d sprites, want 6", len(r.sprites))
	}
	for _, s := range r.sprites {
		if s != SpriteBlock {
			t.Errorf("sprite = %q, want %q", s, SpriteBlock)
		}
	}
}
