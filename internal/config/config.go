// Package config provides YAML-based game configuration loading and
// difficulty management for the space shooter.
package config

import (
	"time"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// SpaceConfig contains all configuration for the space shooter.
type SpaceConfig struct {
	Playfield  core.Size        `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
	Tick       time.Duration    `yaml:"tick"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Size         core.Size `yaml:",inline"`
	Speed        int       `yaml:"speed"`         // Pixels moved per input event
	BottomMargin int       `yaml:"bottom_margin"` // Gap between ship and playfield bottom
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Size  core.Size `yaml:",inline"`
	Speed int       `yaml:"speed"` // Pixels per tick in the normal level
}

// PowerUpConfig defines falling health power-ups.
type PowerUpConfig struct {
	Size  core.Size `yaml:",inline"`
	Speed int       `yaml:"speed"`
	Heal  int       `yaml:"heal"`
}

// ProjectileConfig defines the single projectile.
type ProjectileConfig struct {
	Size     core.Size     `yaml:",inline"`
	Speed    int           `yaml:"speed"`
	Cooldown time.Duration `yaml:"cooldown"` // Minimum time between shots
}

// SpawnConfig holds per-tick spawn probabilities.
type SpawnConfig struct {
	ObstacleChance    float64 `yaml:"obstacle_chance"`
	PowerUpChance     float64 `yaml:"powerup_chance"`
	StarRefreshChance float64 `yaml:"star_refresh_chance"`
	Stars             int     `yaml:"stars"`
}

// RulesConfig holds scoring, health and timing rules.
type RulesConfig struct {
	StartHealth     int           `yaml:"start_health"`
	MaxHealth       int           `yaml:"max_health"` // 0 = uncapped
	CollisionDamage int           `yaml:"collision_damage"`
	HitScore        int           `yaml:"hit_score"`
	ShieldDuration  time.Duration `yaml:"shield_duration"`
	GameDuration    time.Duration `yaml:"game_duration"`
}

// DifficultyConfig defines the one-way hard level escalation.
type DifficultyConfig struct {
	Enabled            bool    `yaml:"enabled"`
	HardScore          int     `yaml:"hard_score"` // Score at which the hard level latches
	HardObstacleSpeed  int     `yaml:"hard_obstacle_speed"`
	HardObstacleChance float64 `yaml:"hard_obstacle_chance"`
}

// AudioConfig controls the audio collaborator.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown values map to the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
