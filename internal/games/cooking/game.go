// Package cooking is the playable kitchen: a round of orders served from a
// tile-map kitchen, built on the pure item and counter logic in
// internal/kitchen.
package cooking

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cooking-collisions/internal/config"
	"github.com/vovakirdan/cooking-collisions/internal/core"
	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
	"github.com/vovakirdan/cooking-collisions/internal/recipe"
	"github.com/vovakirdan/cooking-collisions/internal/registry"
)

// Mode selects how a round starts.
type Mode string

const (
	ModeService  Mode = "service"  // straight into timed service
	ModeTutorial Mode = "tutorial" // scripted orders first, timer frozen
)

// configPath stores the custom kitchen.yaml path set via CLI
var configPath string

// recipesPath stores the custom recipe book path set via CLI
var recipesPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetRecipesPath sets the custom recipe book path for loading.
func SetRecipesPath(path string) {
	recipesPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game for the kitchen.
type Game struct {
	mode Mode

	cfg        config.KitchenConfig
	book       recipe.Book
	layout     kitchen.Layout
	difficulty *config.DifficultyManager

	kitchen *kitchen.Kitchen
	player  player
	round   *round
	rng     *rand.Rand
	tick    uint64
	dt      float64

	runtime  core.RuntimeConfig
	paused   bool
	gameOver bool
	tooSmall bool
	best     int // session best, kept across restarts

	// setup problems found by the last Reset, reported on the next Step
	warnings []core.Event
}

// New creates a kitchen that starts in timed service.
func New() *Game {
	return &Game{mode: ModeService}
}

// NewTutorial creates a kitchen that starts with the scripted tutorial.
func NewTutorial() *Game {
	return &Game{mode: ModeTutorial}
}

func init() {
	registry.Register("kitchen", func() registry.Game {
		return New()
	})
	registry.Register("kitchen_tutorial", func() registry.Game {
		return NewTutorial()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTutorial {
		return "kitchen_tutorial"
	}
	return "kitchen"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTutorial {
		return "Kitchen (Tutorial)"
	}
	return "Kitchen"
}

// Reset loads the configuration and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = runtime.TickSeconds()
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.warnings = nil

	g.loadConfig()

	// The kitchen lives across rounds; a restart clears it and rebuilds the
	// layout's counters and tools.
	if g.kitchen == nil {
		g.kitchen = kitchen.New(g.book.Graph(), g.cfg.Rules())
	} else {
		g.kitchen.Configure(g.book.Graph(), g.cfg.Rules())
	}
	if err := g.kitchen.Reset(g.layout); err != nil {
		g.warn("layout", err)
		g.layout = kitchen.DefaultLayout()
		//nolint:errcheck // the built-in layout always builds
		g.kitchen.Reset(g.layout)
	}

	g.kitchen.RefillSources()

	spawn, _ := g.layout.Spawn()
	g.player = player{pos: spawn, facing: faceUp}
	g.round = newRound(g.cfg, g.book, g.difficulty, g.rng, g.mode == ModeTutorial)

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.player.selectFacing(g.kitchen)
}

// loadConfig resolves kitchen.yaml and the recipe book, falling back to the
// built-in content when either is missing or broken.
func (g *Game) loadConfig() {
	cfg, err := config.LoadKitchen(configPath)
	if err != nil {
		g.warn("config", err)
		cfg = config.DefaultKitchenConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		g.warn("config", err)
		cfg = config.DefaultKitchenConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	layout, err := cfg.KitchenLayout()
	if err != nil {
		g.warn("layout", err)
		layout = kitchen.DefaultLayout()
	}
	g.layout = layout

	book, err := recipe.LoadBook(recipesPath)
	if err == nil {
		err = book.Validate()
	}
	if err != nil {
		g.warn("recipes", err)
		book, _ = recipe.DefaultBook()
	}
	g.book = book
}

func (g *Game) warn(what string, err error) {
	g.warnings = append(g.warnings, core.Event{Kind: "warning", Detail: fmt.Sprintf("%s: %v", what, err)})
}

// Resize adapts the game to a new terminal size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	events := g.warnings
	g.warnings = nil

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		events, g.warnings = g.warnings, nil
		return core.StepResult{State: g.State(), Events: events}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.round.advanceClock(g.dt)
	if in.Has(core.ActionSkip) && g.round.skipTutorial() {
		events = append(events, core.Event{Kind: "tutorial_skipped"})
	}

	g.kitchen.RefillSources()
	events = append(events, g.handleInput(in)...)

	outcomes := g.kitchen.Step(g.dt, g.round.orders, &g.round.board)
	events = append(events, g.round.record(outcomes)...)
	g.player.sync(g.kitchen)
	g.player.selectFacing(g.kitchen)

	events = append(events, g.round.settle(g.dt)...)

	if g.round.over() {
		g.gameOver = true
		if g.round.board.Score > g.best {
			g.best = g.round.board.Score
		}
		events = append(events, core.Event{
			Kind:   "round_over",
			Detail: fmt.Sprintf("delivered %d, missed %d, expired %d", g.round.board.Delivered, g.round.missed, g.round.expired),
			Value:  float64(g.round.board.Score),
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies one tick of player input.
func (g *Game) handleInput(in core.InputFrame) []core.Event {
	p := &g.player
	switch {
	case in.Has(core.ActionUp):
		p.move(faceUp, g.layout)
	case in.Has(core.ActionDown):
		p.move(faceDown, g.layout)
	case in.Has(core.ActionLeft):
		p.move(faceLeft, g.layout)
	case in.Has(core.ActionRight):
		p.move(faceRight, g.layout)
	}
	p.selectFacing(g.kitchen)

	var events []core.Event
	if in.Has(core.ActionInteract) {
		if detail := p.interact(g.kitchen); detail != "" {
			events = append(events, core.Event{Kind: "interact", Detail: detail})
		}
	}
	if in.Has(core.ActionAltInteract) {
		if detail := p.liftFromPlate(g.kitchen); detail != "" {
			events = append(events, core.Event{Kind: "interact", Detail: detail})
		}
	}
	if in.Has(core.ActionChop) {
		if typ, ok := p.chop(g.kitchen); ok {
			events = append(events, core.Event{Kind: "chopped", Detail: typ})
		}
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.round.board.Score,
		Delivered: g.round.board.Delivered,
		Missed:    g.round.missed,
		Expired:   g.round.expired,
		Elapsed:   g.round.elapsed,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Best returns the best score of this session.
func (g *Game) Best() int {
	return g.best
}
