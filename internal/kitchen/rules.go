// Package kitchen holds the item and counter state machine: placing items,
// combining them through the recipe graph, cooking on tools, and resolving
// the per-tick intents that follow.
//
// The package is pure game logic with no terminal or I/O dependencies.
// A Kitchen is not safe for concurrent use.
package kitchen

import (
	"errors"

	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

var (
	// ErrSlotsFull is returned when a third item is placed on a carrier.
	ErrSlotsFull = errors.New("kitchen: both slots occupied")
	// ErrStaleHandle is returned for handles whose item was removed.
	ErrStaleHandle = errors.New("kitchen: stale item handle")
	// ErrUnknownUnit is returned for counter indices out of range.
	ErrUnknownUnit = errors.New("kitchen: unknown counter unit")
)

// Rules holds the tunables of the cooking and scoring model.
type Rules struct {
	CookAfter   float64 // seconds on a frying pan before a default item cooks
	BurnAfter   float64 // total seconds on the pan before a cooked item burns
	BurnEnabled bool
	BurnInput   string // edge label followed when an item burns

	DefaultSize  float64
	ChoppedSize  float64
	CombinedSize float64
	ToolSize     float64

	ServeScore int
	ServeBonus float64 // seconds added to the game timer per served order
	TimerCap   float64
	Penalty    float64 // seconds removed for a wrong delivery or expired order
}

// DefaultRules returns the standard arcade tuning.
func DefaultRules() Rules {
	return Rules{
		CookAfter:    5.0,
		BurnAfter:    8.0,
		BurnEnabled:  true,
		BurnInput:    recipe.InputFry,
		DefaultSize:  75,
		ChoppedSize:  45,
		CombinedSize: 50,
		ToolSize:     120,
		ServeScore:   10,
		ServeBonus:   20,
		TimerCap:     150,
		Penalty:      15,
	}
}

// burnDelay is how long a cooked item must stay on the pan after cooking.
func (r Rules) burnDelay() float64 {
	return r.BurnAfter - r.CookAfter
}
