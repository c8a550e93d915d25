package game

import "github.com/vovakirdan/hero-dash/internal/config"

// Spawner accumulates dt into two independent timers and reports when an
// enemy or a platform is due.
type Spawner struct {
	enemyTimer    float64
	platformTimer float64

	enemyInterval    float64
	platformInterval float64
}

// NewSpawner creates a spawner with both timers at zero.
func NewSpawner(cfg config.SpawnConfig) Spawner {
	return Spawner{
		enemyInterval:    cfg.EnemyInterval,
		platformInterval: cfg.PlatformInterval,
	}
}

// Advance adds dt to both timers. A timer that reaches its interval is
// reset to zero and reported as due; at most one spawn per kind per call.
func (s *Spawner) Advance(dt float64) (enemyDue, platformDue bool) {
	s.enemyTimer += dt
	if s.enemyTimer >= s.enemyInterval {
		s.enemyTimer = 0
		enemyDue = true
	}

	s.platformTimer += dt
	if s.platformTimer >= s.platformInterval {
		s.platformTimer = 0
		platformDue = true
	}
	return enemyDue, platformDue
}

// EnemyTimer returns the time accumulated towards the next enemy.
func (s Spawner) EnemyTimer() float64 {
	return s.enemyTimer
}

// PlatformTimer returns the time accumulated towards the next platform.
func (s Spawner) PlatformTimer() float64 {
	return s.platformTimer
}

// offScreener is anything the lifecycle manager can prune.
type offScreener interface {
	IsOffScreen() bool
}

// prune returns the items still on screen, in their original order.
// The input slice is left untouched.
func prune[T offScreener](items []T) []T {
	survivors := make([]T, 0, len(items))
	for _, it := range items {
		if !it.IsOffScreen() {
			survivors = append(survivors, it)
		}
	}
	return survivors
}
