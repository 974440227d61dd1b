// spacegame is a terminal space shooter: dodge obstacles, shoot them for
// points, grab power-ups and survive until the clock runs out.
//
// Usage:
//
//	spacegame play      - Play a local game
//	spacegame serve     - Start SSH server for remote play
//	spacegame scores    - Show the best recorded runs
//	spacegame config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.spacegame/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegame",
	Short: "Space shooter in your terminal",
	Long: `A terminal space shooter. Move the ship, shoot the falling obstacles,
collect power-ups and keep your health above zero until time runs out.

Available commands:
  play     - Play a local game
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  spacegame play
  spacegame play --difficulty hard
  spacegame serve --ssh :2222
  spacegame scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config and applies the --difficulty preset.
func loadConfig() (config.SpaceConfig, error) {
	cfg, err := config.LoadSpace(flagConfig)
	if err != nil {
		return config.SpaceConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.SpaceConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplySpacePreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return config.SpaceConfig{}, fmt.Errorf("config: difficulty %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// fileLogger logs to --log-file, or nowhere when it is unset. The returned
// closer must be called on exit.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
