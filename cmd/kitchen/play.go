package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cooking-collisions/internal/core"
	"github.com/vovakirdan/cooking-collisions/internal/platform/tui"
	"github.com/vovakirdan/cooking-collisions/internal/registry"
)

var flagTutorial bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of service, or the tutorial with --tutorial.

Controls:
  WASD/Arrows  - Walk, or turn to face a counter
  E/Space      - Pick up, place, bin or deliver
  Shift+E      - Lift the contents off a plate
  F            - Chop on the board in front of you
  K            - Skip the tutorial
  P/Esc        - Pause
  R            - Restart (after time runs out)
  B            - Back to the menu (paused or after time runs out)
  Ctrl+S       - Save a screenshot to ~/.kitchen/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More time, no burning, order pace starts slow
  normal - Order pace starts at 30% and speeds up
  hard   - Less time, more orders, bigger penalties
  fixed  - No progression, stays at the config's initial level

Examples:
  kitchen play
  kitchen play --tutorial
  kitchen play --difficulty hard
  kitchen play --config ./my-kitchen.yaml --recipes ./my-recipes.yaml
  kitchen play --seed 42 --log-file kitchen.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTutorial, "tutorial", false, "Start with the scripted tutorial")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen.yaml")
	playCmd.Flags().StringVar(&flagRecipes, "recipes", "", "Path to custom recipe book YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := gameLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	applyGameFlags()

	gameID := "kitchen"
	if flagTutorial {
		gameID = "kitchen_tutorial"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cliLogger())

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	_, runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
