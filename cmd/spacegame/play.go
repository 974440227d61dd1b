package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/audio/speaker"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagTick    time.Duration
	flagNoAudio bool
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W   - Fire
  X/S/Down     - Shield
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Softer hits, fewer obstacles, longer round
  normal - Configuration as loaded
  hard   - Hard level comes sooner, shorter shield
  fixed  - No hard level

Examples:
  spacegame play
  spacegame play --difficulty easy
  spacegame play --no-audio --seed 42
  spacegame play --config ./my-space.yaml --log-file space.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval (default from config)")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := fileLogger("spacegame")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := speaker.New(cfg.Audio, logger)

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: flagTick,
			Seed:         flagSeed,
		},
		Store:  store,
		Audio:  player,
		Logger: logger,
		Player: playerName(),
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
