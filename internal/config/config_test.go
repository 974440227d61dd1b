package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSpaceConfig() {
		t.Errorf("embedded defaults drifted from DefaultSpaceConfig():\n%+v\n%+v", cfg, DefaultSpaceConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultsUseReferenceConstants(t *testing.T) {
	cfg := DefaultSpaceConfig()

	if cfg.Playfield.W != 500 || cfg.Playfield.H != 500 {
		t.Errorf("playfield = %+v", cfg.Playfield)
	}
	if cfg.Projectile.Cooldown != 500*time.Millisecond {
		t.Errorf("cooldown = %s", cfg.Projectile.Cooldown)
	}
	if cfg.Rules.ShieldDuration != 5*time.Second || cfg.Rules.GameDuration != time.Minute {
		t.Errorf("durations = %s / %s", cfg.Rules.ShieldDuration, cfg.Rules.GameDuration)
	}
	if cfg.Tick != 20*time.Millisecond {
		t.Errorf("tick = %s", cfg.Tick)
	}
}

func TestLoadSpaceCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  game_duration: 90s\nspawn:\n  stars: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSpace(path)
	if err != nil {
		t.Fatalf("LoadSpace() failed: %v", err)
	}
	if cfg.Rules.GameDuration != 90*time.Second {
		t.Errorf("game duration = %s, expected 90s", cfg.Rules.GameDuration)
	}
	if cfg.Spawn.Stars != 50 {
		t.Errorf("stars = %d, expected 50", cfg.Spawn.Stars)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Size.W != 50 || cfg.Rules.HitScore != 10 {
		t.Errorf("defaults lost: player=%+v hit=%d", cfg.Player.Size, cfg.Rules.HitScore)
	}
}

func TestLoadSpaceCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSpace(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("rules: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpace(broken); err == nil {
		t.Error("unparseable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  obstacle_chance: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSpace(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultSpaceConfig()
	cfg.Player.Speed = 0
	cfg.Spawn.PowerUpChance = -0.1
	cfg.Rules.MaxHealth = 50

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("expected 3 problems, got %d: %v", n, err)
	}
}

func TestApplySpacePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg SpaceConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg SpaceConfig) {
			if cfg.Rules.CollisionDamage != 10 {
				t.Errorf("easy damage = %d, expected 10", cfg.Rules.CollisionDamage)
			}
			if cfg.Rules.GameDuration != 90*time.Second {
				t.Errorf("easy duration = %s, expected 1m30s", cfg.Rules.GameDuration)
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg SpaceConfig) {
			if cfg.Difficulty.HardScore != 50 {
				t.Errorf("hard threshold = %d, expected 50", cfg.Difficulty.HardScore)
			}
			if cfg.Rules.ShieldDuration != 2500*time.Millisecond {
				t.Errorf("hard shield = %s", cfg.Rules.ShieldDuration)
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg SpaceConfig) {
			if cfg.Difficulty.Enabled {
				t.Error("fixed preset should disable escalation")
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg SpaceConfig) {
			if cfg != DefaultSpaceConfig() {
				t.Error("normal preset should not change anything")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSpaceConfig()
			ApplySpacePreset(&cfg, tc.preset)
			tc.check(t, cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestHardPresetOnExtremeConfig(t *testing.T) {
	cfg := DefaultSpaceConfig()
	cfg.Spawn.ObstacleChance = 0.8
	cfg.Difficulty.HardScore = 1

	ApplySpacePreset(&cfg, DifficultyHard)

	if cfg.Spawn.ObstacleChance != 1 {
		t.Errorf("obstacle chance = %g, expected it capped at 1", cfg.Spawn.ObstacleChance)
	}
	if cfg.Difficulty.HardScore != 1 {
		t.Errorf("hard threshold = %d, expected 1", cfg.Difficulty.HardScore)
	}
	if !NewEscalation(cfg).IsEnabled() {
		t.Error("hard preset must keep escalation enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := DefaultSpaceConfig()
	cfg.Rules.GameDuration = 42 * time.Second

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() failed: %v", err)
	}
	back, err := parse(data)
	if err != nil {
		t.Fatalf("dumped YAML does not parse: %v\n%s", err, data)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestEscalationLatch(t *testing.T) {
	e := NewEscalation(DefaultSpaceConfig())

	if e.ObstacleSpeed() != 3 || e.ObstacleChance() != 0.02 {
		t.Fatalf("normal level params = %d / %g", e.ObstacleSpeed(), e.ObstacleChance())
	}
	if e.Update(90) {
		t.Error("score 90 should not escalate")
	}
	if !e.Update(100) {
		t.Error("score 100 should escalate")
	}
	if e.Update(120) {
		t.Error("escalation should report the transition only once")
	}
	if !e.Hard() || e.ObstacleSpeed() != 5 || e.ObstacleChance() != 0.05 {
		t.Errorf("hard level params = %v %d / %g", e.Hard(), e.ObstacleSpeed(), e.ObstacleChance())
	}
}

func TestEscalationDisabled(t *testing.T) {
	cfg := DefaultSpaceConfig()
	ApplySpacePreset(&cfg, DifficultyFixed)
	e := NewEscalation(cfg)

	if e.Update(10_000) || e.Hard() {
		t.Error("fixed difficulty must never escalate")
	}
}
