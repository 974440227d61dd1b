package space

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Vitals is the scalar process state touched by collisions.
type Vitals struct {
	Score  int
	Health int
}

// Hits summarizes what a collision pass did.
type Hits struct {
	Collisions int  // obstacles that struck the unshielded ship
	Destroyed  bool // projectile took out an obstacle
	Collected  bool // projectile picked up a power-up
	Fatal      bool // health dropped to zero or below
}

// Resolver applies bounding-box collisions between the ship, the projectile,
// obstacles and power-ups.
type Resolver struct {
	obstacle  core.Size
	powerUp   core.Size
	damage    int
	hitScore  int
	heal      int
	maxHealth int
}

// NewResolver creates a resolver from the rules section of cfg.
func NewResolver(cfg config.SpaceConfig) *Resolver {
	return &Resolver{
		obstacle:  cfg.Obstacle.Size,
		powerUp:   cfg.PowerUp.Size,
		damage:    cfg.Rules.CollisionDamage,
		hitScore:  cfg.Rules.HitScore,
		heal:      cfg.PowerUp.Heal,
		maxHealth: cfg.Rules.MaxHealth,
	}
}

// Resolve runs the three collision passes in order: ship vs obstacles,
// projectile vs obstacles, projectile vs power-ups. A fatal hit stops the
// pass immediately. The projectile matches at most one entity per call,
// whichever comes first in store order.
func (r *Resolver) Resolve(st *Store, shielded bool, v *Vitals) Hits {
	var hits Hits

	if !shielded {
		ship := st.Player.Rect()
		for i := 0; i < len(st.Obstacles); {
			if !ship.Intersects(core.RectAt(st.Obstacles[i], r.obstacle)) {
				i++
				continue
			}
			st.Obstacles = removeAt(st.Obstacles, i)
			v.Health -= r.damage
			hits.Collisions++
			if v.Health <= 0 {
				hits.Fatal = true
				return hits
			}
		}
	}

	if !st.Projectile.Visible {
		return hits
	}
	shot := st.Projectile.Rect()

	for i, o := range st.Obstacles {
		if shot.Intersects(core.RectAt(o, r.obstacle)) {
			st.Obstacles = removeAt(st.Obstacles, i)
			v.Score += r.hitScore
			st.Projectile.Visible = false
			hits.Destroyed = true
			return hits
		}
	}

	for i, p := range st.PowerUps {
		if shot.Intersects(core.RectAt(p, r.powerUp)) {
			st.PowerUps = removeAt(st.PowerUps, i)
			v.Health = r.healed(v.Health)
			st.Projectile.Visible = false
			hits.Collected = true
			return hits
		}
	}

	return hits
}

// healed applies one power-up. A positive maxHealth caps the result.
func (r *Resolver) healed(health int) int {
	health += r.heal
	if r.maxHealth > 0 && health > r.maxHealth {
		health = r.maxHealth
	}
	return health
}
