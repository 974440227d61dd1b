package space

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Rand is the random source used by the spawner.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner introduces new obstacles and power-ups and refreshes the star field.
type Spawner struct {
	rng           Rand
	field         core.Size
	obstacle      core.Size
	powerUp       core.Size
	powerUpChance float64
	starChance    float64
	starCount     int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SpaceConfig, rng Rand) *Spawner {
	return &Spawner{
		rng:           rng,
		field:         cfg.Playfield,
		obstacle:      cfg.Obstacle.Size,
		powerUp:       cfg.PowerUp.Size,
		powerUpChance: cfg.Spawn.PowerUpChance,
		starChance:    cfg.Spawn.StarRefreshChance,
		starCount:     cfg.Spawn.Stars,
	}
}

// Spawn runs one tick of spawning. Each of the three rolls draws exactly one
// uniform value, in the order obstacle, power-up, star refresh.
func (s *Spawner) Spawn(st *Store, obstacleChance float64) {
	if s.rng.Float64() < obstacleChance {
		st.Obstacles = append(st.Obstacles, s.topEdge(s.obstacle))
	}

	if s.rng.Float64() < s.powerUpChance {
		st.PowerUps = append(st.PowerUps, s.topEdge(s.powerUp))
	}

	if s.rng.Float64() < s.starChance {
		st.Stars = s.Stars()
	}
}

// topEdge picks x uniformly in [0, fieldW - w] at y = 0.
func (s *Spawner) topEdge(size core.Size) core.Point {
	span := s.field.W - size.W
	if span < 0 {
		span = 0
	}
	return core.Point{X: s.rng.Intn(span + 1), Y: 0}
}

// Stars generates a fresh star field uniformly over the playfield.
func (s *Spawner) Stars() []core.Point {
	stars := make([]core.Point, s.starCount)
	for i := range stars {
		stars[i] = core.Point{
			X: s.rng.Intn(s.field.W),
			Y: s.rng.Intn(s.field.H),
		}
	}
	return stars
}
