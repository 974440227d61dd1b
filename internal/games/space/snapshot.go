package space

import (
	"slices"
	"time"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Snapshot is a read-only view of everything a renderer needs.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Tick   uint64
	State  string
	Reason EndReason
	Field  core.Size

	Player            core.Rect
	Projectile        core.Rect
	ProjectileVisible bool
	ObstacleSize      core.Size
	PowerUpSize       core.Size
	Obstacles         []core.Point
	PowerUps          []core.Point
	Stars             []core.Point

	Score    int
	Health   int
	TimeLeft int // whole seconds

	ShieldActive bool
	ShieldLeft   time.Duration
	Firing       bool // fire cooldown latched
	HardLevel    bool
	GameOver     bool
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	return Snapshot{
		Tick:   g.tick,
		State:  g.state,
		Reason: g.reason,
		Field:  g.cfg.Playfield,

		Player:            g.store.Player.Rect(),
		Projectile:        g.store.Projectile.Rect(),
		ProjectileVisible: g.store.Projectile.Visible,
		ObstacleSize:      g.cfg.Obstacle.Size,
		PowerUpSize:       g.cfg.PowerUp.Size,
		Obstacles:         slices.Clone(g.store.Obstacles),
		PowerUps:          slices.Clone(g.store.PowerUps),
		Stars:             slices.Clone(g.store.Stars),

		Score:    g.vitals.Score,
		Health:   g.vitals.Health,
		TimeLeft: g.timeLeft,

		ShieldActive: g.shield.Active(now),
		ShieldLeft:   g.shield.Remaining(now),
		Firing:       g.cooldown.Firing(),
		HardLevel:    g.escalation.Hard(),
		GameOver:     g.state == StateGameOver,
	}
}
