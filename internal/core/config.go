package core

import "time"

// RuntimeConfig contains settings passed from the CLI to the frame driver.
type RuntimeConfig struct {
	ScreenW    int           // Terminal width in characters
	ScreenH    int           // Terminal height in characters
	TickRate   int           // Frame driver ticks per second (default 60)
	Seed       int64         // RNG seed for deterministic gameplay
	HoldWindow time.Duration // How long a direction key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		HoldWindow: 150 * time.Millisecond,
	}
}
