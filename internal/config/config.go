// Package config provides YAML-based configuration loading for Hero Dash.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hero-dash/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains every tunable constant of the simulation.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Hero      HeroConfig      `yaml:"hero"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Platform  PlatformConfig  `yaml:"platform"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	State     StateConfig     `yaml:"state"`
	Menu      MenuConfig      `yaml:"menu"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ScreenConfig defines the logical play area in world pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	Speed        float64 `yaml:"speed"`
	MaxJumps     int     `yaml:"max_jumps"`
	// FrameCoupled applies every increment once per tick regardless of dt.
	// When false, increments are scaled by dt * ReferenceFPS.
	FrameCoupled bool    `yaml:"frame_coupled"`
	ReferenceFPS float64 `yaml:"reference_fps"`
}

// HeroConfig defines the hero's spawn point and bounding box.
type HeroConfig struct {
	StartX       float64 `yaml:"start_x"`
	GroundOffset float64 `yaml:"ground_offset"` // ground line = screen height - offset
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// EnemyConfig defines enemy size, speed range and idle behaviour.
type EnemyConfig struct {
	SpawnOffset  float64 `yaml:"spawn_offset"` // distance past the right edge
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinSpeed     int     `yaml:"min_speed"`
	MaxSpeed     int     `yaml:"max_speed"`
	IdleChance   float64 `yaml:"idle_chance"`   // per-frame probability while moving
	IdleDuration float64 `yaml:"idle_duration"` // time-units spent idle
}

// PlatformConfig defines platform shape, speed and the support test.
type PlatformConfig struct {
	BlockSize        float64 `yaml:"block_size"`
	MinBlocks        int     `yaml:"min_blocks"`
	MaxBlocks        int     `yaml:"max_blocks"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinY             int     `yaml:"min_y"`
	MaxY             int     `yaml:"max_y"`
	SupportTolerance float64 `yaml:"support_tolerance"`
}

// SpawnConfig defines the spawn intervals in time-units.
type SpawnConfig struct {
	EnemyInterval    float64 `yaml:"enemy_interval"`
	PlatformInterval float64 `yaml:"platform_interval"`
}

// AnimationConfig defines the sprite frame cadence.
type AnimationConfig struct {
	Delay float64 `yaml:"delay"`
}

// StateConfig defines state machine timings.
type StateConfig struct {
	DeathDwell float64 `yaml:"death_dwell"`
}

// MenuConfig holds the menu button rectangles in world pixels.
type MenuConfig struct {
	Start ButtonConfig `yaml:"start"`
	Sound ButtonConfig `yaml:"sound"`
	Exit  ButtonConfig `yaml:"exit"`
}

// ButtonConfig is a rectangle given by its top-left corner and size.
type ButtonConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts the button to a core.Rect.
func (b ButtonConfig) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// AudioConfig defines the initial sound toggle and mixer levels.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
	MenuTrack  string  `yaml:"menu_track"`
	GameTrack  string  `yaml:"game_track"`
}

// GroundY returns the hero's centre y when standing on the ground line.
func (c Config) GroundY() float64 {
	return c.Screen.Height - c.Hero.GroundOffset
}

// Validate checks that every range is usable by the simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Physics.MaxJumps >= 1, "physics.max_jumps must be at least 1, got %d", c.Physics.MaxJumps)
	check(c.Physics.FrameCoupled || c.Physics.ReferenceFPS > 0, "physics.reference_fps must be positive when frame_coupled is false")
	check(c.Hero.Width > 0 && c.Hero.Height > 0, "hero size must be positive")
	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive")
	check(c.Enemy.MinSpeed >= 0 && c.Enemy.MinSpeed <= c.Enemy.MaxSpeed, "enemy speed range [%d, %d] is empty", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	check(c.Enemy.IdleChance >= 0 && c.Enemy.IdleChance <= 1, "enemy.idle_chance must be in [0, 1], got %v", c.Enemy.IdleChance)
	check(c.Platform.BlockSize > 0, "platform.block_size must be positive")
	check(c.Platform.MinBlocks >= 1 && c.Platform.MinBlocks <= c.Platform.MaxBlocks, "platform block range [%d, %d] is invalid", c.Platform.MinBlocks, c.Platform.MaxBlocks)
	check(c.Platform.MinSpeed <= c.Platform.MaxSpeed, "platform speed range [%v, %v] is empty", c.Platform.MinSpeed, c.Platform.MaxSpeed)
	check(c.Platform.MinY <= c.Platform.MaxY, "platform band range [%d, %d] is empty", c.Platform.MinY, c.Platform.MaxY)
	check(c.Spawn.EnemyInterval > 0 && c.Spawn.PlatformInterval > 0, "spawn intervals must be positive")
	check(c.Animation.Delay > 0, "animation.delay must be positive")
	check(c.State.DeathDwell >= 0, "state.death_dwell must not be negative")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive")

	return errors.Join(errs...)
}
