package game

import (
	"github.com/vovakirdan/hero-dash/internal/core"
)

// Backdrop sprite keys.
const (
	SpriteMenuBackground = "menu_background"
	SpriteGameBackground = "game_background"
	SpriteInfected       = "infected"
)

// Menu and death screen captions.
const (
	TitleText    = "Main Menu"
	StartText    = "Start game"
	SoundOnText  = "Music and sounds: on"
	SoundOffText = "Music and sounds: off"
	ExitText     = "Exit"
	GameOverText = "You lost!"
	titleY       = 100
)

// Render paints the current state. It never mutates the simulation.
func (m *Machine) Render(r Renderer) {
	switch m.state {
	case StateMenu:
		m.renderMenu(r)
	case StatePlaying:
		m.renderGame(r)
	case StateDead:
		m.renderDead(r)
	}
}

func (m *Machine) screenCenter() core.Vec2 {
	return core.Vec2{X: m.cfg.Screen.Width / 2, Y: m.cfg.Screen.Height / 2}
}

func (m *Machine) renderMenu(r Renderer) {
	r.DrawSprite(SpriteMenuBackground, m.screenCenter())
	r.DrawText(TitleText, core.Vec2{X: m.cfg.Screen.Width / 2, Y: titleY}, core.ColorBrown)

	buttons := m.cfg.Menu
	drawButton(r, buttons.Start.Rect(), core.ColorDarkGreen, StartText)

	label := SoundOffText
	if m.soundOn {
		label = SoundOnText
	}
	drawButton(r, buttons.Sound.Rect(), core.ColorDarkBlue, label)
	drawButton(r, buttons.Exit.Rect(), core.ColorDarkRed, ExitText)
}

func drawButton(r Renderer, rect core.Rect, fill core.Color, label string) {
	r.DrawRect(rect, fill)
	r.DrawText(label, rect.Center(), core.ColorWhite)
}

func (m *Machine) renderGame(r Renderer) {
	r.DrawSprite(SpriteGameBackground, m.screenCenter())

	// Ground strip below the hero's feet
	groundTop := m.cfg.GroundY() + m.cfg.Hero.Height/2
	r.DrawRect(core.NewRect(0, groundTop, m.cfg.Screen.Width, m.cfg.Screen.Height-groundTop), core.ColorGreen)

	if m.world != nil {
		m.world.Draw(r)
	}
}

func (m *Machine) renderDead(r Renderer) {
	r.DrawSprite(SpriteInfected, m.screenCenter())
	r.DrawText(GameOverText, m.screenCenter(), core.ColorRed)
}
