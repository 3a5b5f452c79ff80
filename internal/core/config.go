package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig sized for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score     int
	Delivered int     // Orders fulfilled this round
	Missed    int     // Deliveries no order asked for
	Expired   int     // Orders that ran out of time
	Elapsed   float64 // Simulated seconds since the round started
	GameOver  bool
	Paused    bool
}

// Event is a notable thing that happened during a tick, for the platform
// to log. Kind is a short machine-friendly tag.
type Event struct {
	Kind   string
	Detail string
	Value  float64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
