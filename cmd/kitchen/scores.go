package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cooking-collisions/internal/platform/tui"
	"github.com/vovakirdan/cooking-collisions/internal/registry"
	"github.com/vovakirdan/cooking-collisions/internal/storage"
)

var (
	flagScoresInteractive bool
	flagScoresRecent      int
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 scores and the latest rounds for a mode
(default: kitchen). Use -i for the interactive scoreboard.

Examples:
  kitchen scores
  kitchen scores kitchen_tutorial
  kitchen scores --recent 20
  kitchen scores -i
  kitchen scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 5, "Number of recent rounds to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores and rounds for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "kitchen"
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'kitchen list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", mode)
		return
	}

	if err := printScores(store, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

func printScores(store *storage.Store, mode string) error {
	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kitchen play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode)
	if err == nil && stats.RoundsCount > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f  Served: %d (best round %d)\n",
			stats.RoundsCount, stats.HighScore, stats.AvgScore, stats.TotalDelivered, stats.BestDelivered)
	}

	if flagScoresRecent <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(mode, flagScoresRecent)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-16s  %5s  %6s  %6s  %7s  %5s  %s\n", "Date", "Score", "Served", "Missed", "Expired", "Time", "ID")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %5d  %6d  %6d  %7d  %2d:%02d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Delivered, r.Missed, r.Expired,
			r.Duration/60, r.Duration%60, r.RoundID)
	}
	return nil
}
