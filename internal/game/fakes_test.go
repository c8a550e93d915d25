package game

import (
	"fmt"

	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

// scriptedRand replays queued values. Once a queue runs dry Intn returns 0
// and Float64 returns 0.5, which never triggers an enemy idle.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recordingRenderer keeps every draw call in order.
type recordingRenderer struct {
	rects   []core.Rect
	texts   []string
	sprites []string
}

func (r *recordingRenderer) DrawRect(rect core.Rect, _ core.Color) {
	r.rects = append(r.rects, rect)
}

func (r *recordingRenderer) DrawText(text string, _ core.Vec2, _ core.Color) {
	r.texts = append(r.texts, text)
}

func (r *recordingRenderer) DrawSprite(key string, _ core.Vec2) {
	r.sprites = append(r.sprites, key)
}

func (r *recordingRenderer) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

// recordingAudio logs calls as "sound:<id>", "music:<track>" and "stop".
type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) PlaySound(id string)    { a.calls = append(a.calls, "sound:"+id) }
func (a *recordingAudio) PlayMusic(track string) { a.calls = append(a.calls, "music:"+track) }
func (a *recordingAudio) StopMusic()             { a.calls = append(a.calls, "stop") }

func (a *recordingAudio) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (a *recordingAudio) reset() {
	a.calls = nil
}

func idleInput() core.InputFrame {
	return core.NewInputFrame()
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func clickOn(b config.ButtonConfig) core.InputFrame {
	in := core.NewInputFrame()
	in.ClickAt(b.Rect().Center())
	return in
}

// shiftPlatform moves every block of p so the first block is centred on c.
func shiftPlatform(p Platform, c core.Vec2) Platform {
	first := p.Blocks[0].Center()
	dx, dy := c.X-first.X, c.Y-first.Y
	for i := range p.Blocks {
		p.Blocks[i].X += dx
		p.Blocks[i].Y += dy
	}
	return p
}

func approxEqual(a, b float64) bool {
	return core.Abs(a-b) < 1e-9
}

func describe(v core.Vec2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
