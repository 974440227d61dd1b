package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best runs, highest score first, followed by totals.

Examples:
  spacegame scores
  spacegame scores --limit 25
  spacegame scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Space Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spacegame play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-4s  %-7s  %s\n", "Rank", "Player", "Score", "Health", "Hard", "End", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-4s  %-7s  %s\n", "----", "------", "-----", "------", "----", "---", "----")
	for i, r := range runs {
		hard := "-"
		if r.HardLevel {
			hard = "yes"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-4s  %-7s  %s\n",
			i+1, player, r.Score, r.Health, hard, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Reached hard level: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.HardRuns)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
