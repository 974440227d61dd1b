package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/space-arcade/internal/core"
)

//go:embed defaults/space.yaml
var defaultSpaceYAML []byte

// DefaultSpaceConfig returns the built-in configuration.
// It mirrors defaults/space.yaml and is used when the embedded file cannot be parsed.
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		Playfield: core.Size{W: 500, H: 500},
		Player: PlayerConfig{
			Size:         core.Size{W: 50, H: 60},
			Speed:        10,
			BottomMargin: 20,
		},
		Obstacle: ObstacleConfig{
			Size:  core.Size{W: 20, H: 20},
			Speed: 3,
		},
		PowerUp: PowerUpConfig{
			Size:  core.Size{W: 20, H: 20},
			Speed: 3,
			Heal:  20,
		},
		Projectile: ProjectileConfig{
			Size:     core.Size{W: 5, H: 10},
			Speed:    10,
			Cooldown: 500 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			ObstacleChance:    0.02,
			PowerUpChance:     0.001,
			StarRefreshChance: 0.1,
			Stars:             200,
		},
		Rules: RulesConfig{
			StartHealth:     100,
			MaxHealth:       100,
			CollisionDamage: 20,
			HitScore:        10,
			ShieldDuration:  5 * time.Second,
			GameDuration:    60 * time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:            true,
			HardScore:          100,
			HardObstacleSpeed:  5,
			HardObstacleChance: 0.05,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Tick: core.DefaultTickInterval,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceYAML
}
