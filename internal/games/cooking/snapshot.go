package cooking

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateTutorial    GameStateType = "tutorial"
	StatePaused      GameStateType = "paused"
	StateRoundOver   GameStateType = "round_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Timer     float64
	Elapsed   float64
	Delivered int
	Missed    int
	Expired   int
	Orders    []string // active dishes, oldest first
	PlayerX   int
	PlayerY   int
	Facing    string
	Held      string // type of the carried item, "" when empty
	Live      int    // live items in the kitchen
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	case g.round.tutorial():
		state = StateTutorial
	}

	held := ""
	if it, ok := g.player.heldItem(g.kitchen); ok {
		held = it.Type
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.round.board.Score,
		Timer:     g.round.board.Timer,
		Elapsed:   g.round.elapsed,
		Delivered: g.round.board.Delivered,
		Missed:    g.round.missed,
		Expired:   g.round.expired,
		Orders:    g.round.orders.Dishes(),
		PlayerX:   g.player.pos.X,
		PlayerY:   g.player.pos.Y,
		Facing:    g.player.facing.String(),
		Held:      held,
		Live:      len(g.kitchen.Live()),
		State:     state,
	}
}
