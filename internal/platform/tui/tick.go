// Package tui runs Hero Dash in the terminal with Bubble Tea.
// It owns the frame clock, maps keys and mouse clicks to game input and
// paints the game through a character canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt after a stall so the world does not jump.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, capped at maxFrameDelta.
// The first frame (zero prev) counts as one nominal tick.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
