// kitchen is a terminal cooking game: serve orders from a tile-map kitchen
// before the clock runs out.
//
// Usage:
//
//	kitchen                  - Start the mode picker menu
//	kitchen list             - List available modes
//	kitchen play             - Play a round of service
//	kitchen play --tutorial  - Play the scripted tutorial first
//	kitchen recipes          - Print and validate the recipe book
//	kitchen scores           - Show high scores and recent rounds
//	kitchen serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.kitchen/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write the game log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cooking-collisions/internal/games/cooking"
	"github.com/vovakirdan/cooking-collisions/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Gameplay flags shared by play and the menu
	flagConfig     string
	flagRecipes    string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "Kitchen - serve orders in your terminal",
	Long: `Kitchen is a real-time cooking game for the terminal.

Walk the kitchen, pick up ingredients, chop and fry them, combine them on
plates and deliver the dishes the orders ask for. Every delivery buys more
time; wrong deliveries and expired orders cost time.

Available commands:
  list     - Show the available modes
  play     - Play a round directly
  recipes  - Print and validate the recipe book
  scores   - View high scores and recent rounds
  serve    - Start SSH server for remote play

Running kitchen without a command opens the mode picker.

Examples:
  kitchen
  kitchen play --tutorial
  kitchen play --difficulty hard
  kitchen recipes --recipes ./my-recipes.yaml
  kitchen serve --ssh :2222`,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kitchen/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the game log to this file (discarded otherwise while playing)")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen.yaml")
	rootCmd.Flags().StringVar(&flagRecipes, "recipes", "", "Path to custom recipe book YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags hands the gameplay flags to the kitchen before a game is
// created.
func applyGameFlags() {
	cooking.SetConfigPath(flagConfig)
	cooking.SetRecipesPath(flagRecipes)
	cooking.SetDifficultyPreset(flagDifficulty)
}

// gameLogger returns the logger used while a TUI program owns the terminal.
// Output goes to --log-file, or nowhere: writing to stderr would corrupt the
// alt-screen frame. The returned close function is never nil.
func gameLogger() (*log.Logger, func(), error) {
	level, _ := log.ParseLevel(flagLogLevel)
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kitchen",
		Level:           level,
	})
	return logger, closeFn, nil
}

// cliLogger logs to stderr for commands that do not take over the terminal.
func cliLogger() *log.Logger {
	level, _ := log.ParseLevel(flagLogLevel)
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "kitchen",
		Level:  level,
	})
}

// openStore opens the scores database, or returns nil with a warning so
// the game still runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
