package space

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Mover advances falling entities and the projectile by one tick.
type Mover struct {
	fieldH       int
	powerUpSpeed int
}

// NewMover creates a mover for the configured playfield.
func NewMover(cfg config.SpaceConfig) *Mover {
	return &Mover{
		fieldH:       cfg.Playfield.H,
		powerUpSpeed: cfg.PowerUp.Speed,
	}
}

// Move shifts obstacles down by obstacleSpeed, power-ups down by their own
// speed and the visible projectile up. Anything below the playfield is culled;
// a projectile above it is hidden.
func (m *Mover) Move(st *Store, obstacleSpeed int) {
	st.Obstacles = m.fall(st.Obstacles, obstacleSpeed)
	st.PowerUps = m.fall(st.PowerUps, m.powerUpSpeed)

	if st.Projectile.Visible {
		st.Projectile.Pos.Y -= st.Projectile.Speed
		if st.Projectile.Pos.Y < 0 {
			st.Projectile.Visible = false
		}
	}
}

// fall moves every point down and filters out those past the bottom, in place.
func (m *Mover) fall(pts []core.Point, speed int) []core.Point {
	kept := pts[:0]
	for _, p := range pts {
		p.Y += speed
		if p.Y > m.fieldH {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
