package tui

import (
	"testing"

	"github.com/vovakirdan/hero-dash/internal/core"
	"github.com/vovakirdan/hero-dash/internal/game"
)

func newTestCanvas() *Canvas {
	// 8x16 world pixels per cell
	return NewCanvas(core.NewScreen(160, 45), 1280, 720)
}

func TestCanvasCellMapping(t *testing.T) {
	c := newTestCanvas()

	tests := []struct {
		p      core.Vec2
		wx, wy int
	}{
		{core.Vec2{X: 0, Y: 0}, 0, 0},
		{core.Vec2{X: 7.9, Y: 15.9}, 0, 0},
		{core.Vec2{X: 8, Y: 16}, 1, 1},
		{core.Vec2{X: 630, Y: 240}, 78, 15},
		{core.Vec2{X: 1279, Y: 719}, 159, 44},
	}

	for _, tt := range tests {
		x, y := c.ToCell(tt.p)
		if x != tt.wx || y != tt.wy {
			t.Errorf("ToCell(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
}

func TestCanvasToWorldRoundTrip(t *testing.T) {
	c := newTestCanvas()

	for _, cell := range [][2]int{{0, 0}, {78, 27}, {159, 44}} {
		p := c.ToWorld(cell[0], cell[1])
		x, y := c.ToCell(p)
		if x != cell[0] || y != cell[1] {
			t.Errorf("ToCell(ToWorld(%d, %d)) = (%d, %d)", cell[0], cell[1], x, y)
		}
	}

	if p := c.ToWorld(0, 0); p.X != 4 || p.Y != 8 {
		t.Errorf("ToWorld(0, 0) = %v, want the cell centre (4, 8)", p)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := newTestCanvas()

	c.DrawText("Exit", core.Vec2{X: 640, Y: 160}, core.ColorWhite)

	// Centre cell 80, four runes start two cells to the left
	row := c.Screen().Row(10)
	if got := row[78:82]; got != "Exit" {
		t.Errorf("row 10 [78:82] = %q, want %q", got, "Exit")
	}
	if cell := c.Screen().GetCell(78, 10); cell.Color != core.ColorWhite {
		t.Errorf("text colour = %v, want white", cell.Color)
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := newTestCanvas()

	c.DrawRect(core.NewRect(480, 200, 300, 80), core.ColorDarkGreen)

	// x 60..97.5 -> cells 60..97, y 12.5..17.5 -> rows 12..17
	for _, p := range [][2]int{{60, 12}, {97, 17}} {
		if cell := c.Screen().GetCell(p[0], p[1]); cell.Rune != '█' || cell.Color != core.ColorDarkGreen {
			t.Errorf("cell %v = %+v, want a dark green block", p, cell)
		}
	}
	for _, p := range [][2]int{{59, 12}, {98, 12}, {60, 11}, {60, 18}} {
		if cell := c.Screen().GetCell(p[0], p[1]); cell.Rune != ' ' {
			t.Errorf("cell %v outside the rect = %q, want blank", p, cell.Rune)
		}
	}
}

func TestCanvasTinyRectStillVisible(t *testing.T) {
	c := newTestCanvas()

	c.DrawRect(core.NewRect(100, 100, 1, 1), core.ColorRed)

	x, y := c.ToCell(core.Vec2{X: 100, Y: 100})
	if c.Screen().Get(x, y) != '█' {
		t.Error("a sub-cell rect should still cover one cell")
	}
}

func TestCanvasDrawSprite(t *testing.T) {
	tests := []struct {
		key  string
		want rune
	}{
		{"hero_idle1", '█'},
		{"hero_idle2", '▓'},
		{"hero_walk2", '▟'},
		{game.SpriteHeroJump, '▲'},
		{"enemy_idle2", 'Z'},
		{game.SpriteBlock, '▒'},
		{"dragon", '?'},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := newTestCanvas()
			center := core.Vec2{X: 200, Y: 480}
			c.DrawSprite(tt.key, center)

			x, y := c.ToCell(center)
			if got := c.Screen().Get(x, y); got != tt.want {
				t.Errorf("centre glyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvasHeroFootprint(t *testing.T) {
	c := newTestCanvas()

	c.DrawSprite("hero_idle1", core.Vec2{X: 200, Y: 480})

	// 48x64 around (200, 480): cells 22..27, rows 28..31
	filled := 0
	for y := 0; y < c.Screen().Height(); y++ {
		for x := 0; x < c.Screen().Width(); x++ {
			if c.Screen().Get(x, y) != ' ' {
				filled++
			}
		}
	}
	if filled != 6*4 {
		t.Errorf("hero covers %d cells, want 24", filled)
	}
}

func TestCanvasBackdropAndBegin(t *testing.T) {
	c := newTestCanvas()

	c.DrawSprite(game.SpriteInfected, core.Vec2{X: 640, Y: 360})
	if c.Screen().Get(0, 0) != '░' || c.Screen().Get(159, 44) != '░' {
		t.Error("infected backdrop should cover the whole screen")
	}

	c.Begin()
	if c.Screen().Get(0, 0) != ' ' {
		t.Error("Begin should clear the screen")
	}
}

func TestSplitSpriteKey(t *testing.T) {
	tests := []struct {
		key        string
		wantFamily string
		wantFrame  int
	}{
		{"hero_walk2", "hero_walk", 2},
		{"enemy_walk12", "enemy_walk", 12},
		{"hero_jump", "hero_jump", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		family, frame := splitSpriteKey(tt.key)
		if family != tt.wantFamily || frame != tt.wantFrame {
			t.Errorf("splitSpriteKey(%q) = (%q, %d), want (%q, %d)",
				tt.key, family, frame, tt.wantFamily, tt.wantFrame)
		}
	}
}
