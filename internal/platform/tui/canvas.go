package tui

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/hero-dash/internal/core"
	"github.com/vovakirdan/hero-dash/internal/game"
)

// sprite is how an entity sprite family looks in cells. Frames are picked
// by the numeric suffix of the sprite key (hero_walk2 -> frames[1]).
type sprite struct {
	frames []rune
	color  core.Color
	w, h   float64 // footprint in world pixels
}

var sprites = map[string]sprite{
	"hero_idle":      {frames: []rune{'█', '▓', '█'}, color: core.ColorYellow, w: 48, h: 64},
	"hero_walk":      {frames: []rune{'▙', '▟'}, color: core.ColorYellow, w: 48, h: 64},
	"hero_jump":      {frames: []rune{'▲'}, color: core.ColorYellow, w: 48, h: 64},
	"enemy_walk":     {frames: []rune{'▚', '▞', '▚', '▞'}, color: core.ColorBrightRed, w: 48, h: 48},
	"enemy_idle":     {frames: []rune{'z', 'Z'}, color: core.ColorRed, w: 48, h: 48},
	game.SpriteBlock: {frames: []rune{'▒'}, color: core.ColorBrown, w: 32, h: 32},
}

// backdrop fills the whole screen with a sparse pattern.
type backdrop struct {
	glyph rune
	color core.Color
	every int // one glyph per every cells, diagonally
}

var backdrops = map[string]backdrop{
	game.SpriteMenuBackground: {glyph: '·', color: core.ColorGray, every: 9},
	game.SpriteGameBackground: {glyph: '.', color: core.ColorBlue, every: 23},
	game.SpriteInfected:       {glyph: '░', color: core.ColorDarkRed, every: 1},
}

// Canvas is a game.Renderer that scales the world onto a character Screen.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

var _ game.Renderer = (*Canvas)(nil)

// NewCanvas maps a worldW x worldH play area onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH float64) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the backing buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Begin clears the buffer for a new frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

func (c *Canvas) scaleX() float64 { return float64(c.screen.Width()) / c.worldW }
func (c *Canvas) scaleY() float64 { return float64(c.screen.Height()) / c.worldH }

// ToCell returns the cell containing world point p.
func (c *Canvas) ToCell(p core.Vec2) (x, y int) {
	return int(math.Floor(p.X * c.scaleX())), int(math.Floor(p.Y * c.scaleY()))
}

// ToWorld returns the world point at the centre of cell (x, y).
func (c *Canvas) ToWorld(x, y int) core.Vec2 {
	return core.Vec2{
		X: (float64(x) + 0.5) / c.scaleX(),
		Y: (float64(y) + 0.5) / c.scaleY(),
	}
}

// cellSpan converts a world rectangle to the cell range [x0,x1) x [y0,y1),
// never smaller than one cell.
func (c *Canvas) cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.Left() * c.scaleX()))
	y0 = int(math.Floor(r.Top() * c.scaleY()))
	x1 = int(math.Ceil(r.Right() * c.scaleX()))
	y1 = int(math.Ceil(r.Bottom() * c.scaleY()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawRect fills r with solid blocks.
func (c *Canvas) DrawRect(r core.Rect, col core.Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	c.screen.FillRect(x0, y0, x1, y1, '█', col)
}

// DrawText writes text centred on the given world point.
func (c *Canvas) DrawText(text string, center core.Vec2, col core.Color) {
	x, y := c.ToCell(center)
	x -= utf8.RuneCountInString(text) / 2
	c.screen.DrawText(x, y, text, col)
}

// DrawSprite paints a backdrop over the whole screen or an entity sprite
// over its footprint. Unknown keys draw a '?' marker.
func (c *Canvas) DrawSprite(key string, center core.Vec2) {
	if b, ok := backdrops[key]; ok {
		c.drawBackdrop(b)
		return
	}

	family, frame := splitSpriteKey(key)
	s, ok := sprites[family]
	if !ok {
		x, y := c.ToCell(center)
		c.screen.SetCell(x, y, '?', core.ColorWhite)
		return
	}

	glyph := s.frames[0]
	if frame > 0 {
		glyph = s.frames[(frame-1)%len(s.frames)]
	}
	x0, y0, x1, y1 := c.cellSpan(core.RectAround(center, s.w, s.h))
	c.screen.FillRect(x0, y0, x1, y1, glyph, s.color)
}

func (c *Canvas) drawBackdrop(b backdrop) {
	for y := 0; y < c.screen.Height(); y++ {
		for x := 0; x < c.screen.Width(); x++ {
			if (x+y*3)%b.every == 0 {
				c.screen.SetCell(x, y, b.glyph, b.color)
			}
		}
	}
}

// splitSpriteKey splits "enemy_walk3" into ("enemy_walk", 3).
// Keys without a numeric suffix return frame 0.
func splitSpriteKey(key string) (string, int) {
	family := strings.TrimRightFunc(key, unicode.IsDigit)
	frame := 0
	for _, r := range key[len(family):] {
		frame = frame*10 + int(r-'0')
	}
	return family, frame
}
