package config

import (
	_ "embed"
)

//go:embed defaults/herodash.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/herodash.yaml and is the last fallback of Load.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpStrength: -20,
			Speed:        5,
			MaxJumps:     4,
			FrameCoupled: true,
			ReferenceFPS: 60,
		},
		Hero: HeroConfig{
			StartX:       200,
			GroundOffset: 240,
			Width:        48,
			Height:       64,
		},
		Enemy: EnemyConfig{
			SpawnOffset:  50,
			Width:        48,
			Height:       48,
			MinSpeed:     1,
			MaxSpeed:     3,
			IdleChance:   0.01,
			IdleDuration: 2,
		},
		Platform: PlatformConfig{
			BlockSize:        32,
			MinBlocks:        3,
			MaxBlocks:        7,
			MinSpeed:         1.0,
			MaxSpeed:         3.0,
			MinY:             0,   // screen height - 720
			MaxY:             420, // screen height - 300
			SupportTolerance: 10,
		},
		Spawn: SpawnConfig{
			EnemyInterval:    9,
			PlatformInterval: 7,
		},
		Animation: AnimationConfig{
			Delay: 0.2,
		},
		State: StateConfig{
			DeathDwell: 2,
		},
		Menu: MenuConfig{
			Start: ButtonConfig{X: 480, Y: 200, W: 300, H: 80},
			Sound: ButtonConfig{X: 480, Y: 300, W: 300, H: 80},
			Exit:  ButtonConfig{X: 480, Y: 400, W: 300, H: 80},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			MenuTrack:  "menu_music",
			GameTrack:  "game_music",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
