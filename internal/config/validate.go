package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable game.
// All problems are reported at once.
func (c SpaceConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Playfield.W <= 0 || c.Playfield.H <= 0 {
		bad("playfield must be positive, got %dx%d", c.Playfield.W, c.Playfield.H)
	}

	sizes := []struct {
		name string
		w, h int
	}{
		{"player", c.Player.Size.W, c.Player.Size.H},
		{"obstacle", c.Obstacle.Size.W, c.Obstacle.Size.H},
		{"powerup", c.PowerUp.Size.W, c.PowerUp.Size.H},
		{"projectile", c.Projectile.Size.W, c.Projectile.Size.H},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			bad("%s size must be positive, got %dx%d", s.name, s.w, s.h)
			continue
		}
		if s.w > c.Playfield.W || s.h > c.Playfield.H {
			bad("%s (%dx%d) does not fit the playfield", s.name, s.w, s.h)
		}
	}
	if c.Player.Size.H+c.Player.BottomMargin > c.Playfield.H {
		bad("player bottom margin %d pushes the ship off the playfield", c.Player.BottomMargin)
	}

	speeds := map[string]int{
		"player speed":     c.Player.Speed,
		"obstacle speed":   c.Obstacle.Speed,
		"powerup speed":    c.PowerUp.Speed,
		"projectile speed": c.Projectile.Speed,
	}
	if c.Difficulty.Enabled {
		speeds["hard obstacle speed"] = c.Difficulty.HardObstacleSpeed
	}
	for name, v := range speeds {
		if v <= 0 {
			bad("%s must be positive, got %d", name, v)
		}
	}

	chances := map[string]float64{
		"obstacle chance":      c.Spawn.ObstacleChance,
		"powerup chance":       c.Spawn.PowerUpChance,
		"star refresh chance":  c.Spawn.StarRefreshChance,
		"hard obstacle chance": c.Difficulty.HardObstacleChance,
	}
	for name, p := range chances {
		if p < 0 || p > 1 {
			bad("%s must be within [0, 1], got %g", name, p)
		}
	}
	if c.Spawn.Stars < 0 {
		bad("star count must not be negative, got %d", c.Spawn.Stars)
	}

	if c.Rules.StartHealth <= 0 {
		bad("start health must be positive, got %d", c.Rules.StartHealth)
	}
	if c.Rules.MaxHealth != 0 && c.Rules.MaxHealth < c.Rules.StartHealth {
		bad("max health %d is below start health %d", c.Rules.MaxHealth, c.Rules.StartHealth)
	}
	if c.Rules.GameDuration <= 0 || c.Rules.ShieldDuration <= 0 || c.Projectile.Cooldown <= 0 {
		bad("game duration, shield duration and cooldown must be positive")
	}
	if c.Tick <= 0 {
		bad("tick must be positive, got %s", c.Tick)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio volume must be within [0, 1], got %g", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
