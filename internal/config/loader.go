package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "space.yaml"

// LoadSpace loads the space shooter configuration.
// Search order: customPath -> ~/.spacegame/configs/space.yaml -> ./configs/space.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
func LoadSpace(customPath string) (SpaceConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpaceConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SpaceConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SpaceConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSpaceYAML)
	if err != nil {
		return DefaultSpaceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (SpaceConfig, error) {
	cfg := DefaultSpaceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpaceConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacegame", "configs", filename)
}

// ApplySpacePreset modifies the config based on a difficulty preset.
// The empty preset and "normal" keep the loaded values. A valid config stays
// valid: probabilities are capped at 1 and a positive hard threshold stays positive.
func ApplySpacePreset(cfg *SpaceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.CollisionDamage = max(cfg.Rules.CollisionDamage/2, 1)
		cfg.Rules.GameDuration = cfg.Rules.GameDuration * 3 / 2
		cfg.Spawn.ObstacleChance *= 0.75
		cfg.Difficulty.HardScore *= 2
	case DifficultyHard:
		if cfg.Difficulty.HardScore > 1 {
			cfg.Difficulty.HardScore /= 2
		}
		cfg.Rules.ShieldDuration = max(cfg.Rules.ShieldDuration/2, time.Second)
		cfg.Spawn.ObstacleChance = min(cfg.Spawn.ObstacleChance*1.5, 1)
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Dump renders cfg as YAML.
func Dump(cfg SpaceConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
