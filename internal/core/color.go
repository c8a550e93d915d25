package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Named colors used by the sprites, menu and backdrops.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrown
	ColorDarkGreen
	ColorDarkBlue
	ColorDarkRed
	ColorGray
)
