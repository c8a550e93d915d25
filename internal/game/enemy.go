package game

import (
	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
)

const (
	enemyWalkPrefix = "enemy_walk"
	enemyIdlePrefix = "enemy_idle"
)

// Enemy drifts leftwards at a fixed speed and pauses now and then.
type Enemy struct {
	Body
	Speed     float64 // per-frame leftward drift, drawn once at spawn
	Idle      bool
	IdleTimer float64

	idleChance   float64
	idleDuration float64
	motion       Motion
	rng          Rand
}

// NewEnemy spawns an enemy just past the right edge on the ground line.
func NewEnemy(cfg config.Config, rng Rand) Enemy {
	return Enemy{
		Body: Body{
			Pos:    core.Vec2{X: cfg.Screen.Width + cfg.Enemy.SpawnOffset, Y: cfg.GroundY()},
			Width:  cfg.Enemy.Width,
			Height: cfg.Enemy.Height,
			Sprite: enemyWalkPrefix + "1",
		},
		Speed:        float64(randInt(rng, cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed)),
		idleChance:   cfg.Enemy.IdleChance,
		idleDuration: cfg.Enemy.IdleDuration,
		motion:       NewMotion(cfg.Physics),
		rng:          rng,
	}
}

// Update either counts down an idle pause or walks left, possibly
// starting a new pause.
func (e *Enemy) Update(dt float64) {
	if e.Idle {
		e.IdleTimer += dt
		if e.IdleTimer > e.idleDuration {
			e.Idle = false
			e.IdleTimer = 0
		}
		return
	}

	e.Pos.X -= e.Speed * e.motion.Scale(dt)
	if e.rng.Float64() < e.idleChance {
		e.Idle = true
		e.IdleTimer = 0
	}
}

// Animate cycles the idle (2 frames) or walk (4 frames) sprites.
func (e *Enemy) Animate() {
	if e.Idle {
		e.cycle(enemyIdlePrefix, 2)
	} else {
		e.cycle(enemyWalkPrefix, 4)
	}
}

// IsOffScreen reports whether the enemy has fully left through the left edge.
func (e Enemy) IsOffScreen() bool {
	return e.Rect().Right() < 0
}

// CollidesWith reports any overlap with r.
func (e Enemy) CollidesWith(r core.Rect) bool {
	return e.Rect().Intersects(r)
}
