// Package config provides YAML-based gameplay tuning and difficulty
// management for the kitchen.
package config

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
)

// KitchenConfig contains all gameplay tuning for a round.
type KitchenConfig struct {
	Cooking    CookingConfig    `yaml:"cooking"`
	Sizes      SizeConfig       `yaml:"sizes"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Orders     OrdersConfig     `yaml:"orders"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Layout     LayoutConfig     `yaml:"layout"`
}

// CookingConfig defines tool timings.
type CookingConfig struct {
	CookAfter   float64 `yaml:"cook_after"`
	BurnAfter   float64 `yaml:"burn_after"`
	BurnEnabled bool    `yaml:"burn_enabled"`
	BurnInput   string  `yaml:"burn_input"`
}

// SizeConfig defines logical item sizes.
type SizeConfig struct {
	Default  float64 `yaml:"default"`
	Chopped  float64 `yaml:"chopped"`
	Combined float64 `yaml:"combined"`
	Tool     float64 `yaml:"tool"`
}

// ScoringConfig defines the round timer and score rewards.
type ScoringConfig struct {
	StartTimer float64 `yaml:"start_timer"`
	ServeScore int     `yaml:"serve_score"`
	ServeBonus float64 `yaml:"serve_bonus"`
	TimerCap   float64 `yaml:"timer_cap"`
	Penalty    float64 `yaml:"penalty"`
}

// OrdersConfig defines how orders are spawned.
type OrdersConfig struct {
	MaxActive        int     `yaml:"max_active"`
	FirstInterval    float64 `yaml:"first_interval"`
	Interval         Curve   `yaml:"interval"`
	Lifetime         Curve   `yaml:"lifetime"`
	IdleSpeedup      float64 `yaml:"idle_speedup"` // spawn clock multiplier while no order is active
	TutorialLifetime float64 `yaml:"tutorial_lifetime"`
}

// Curve is a value that shrinks logarithmically with elapsed time:
// Base / (1 + Scale*ln(1 + Rate*t)).
type Curve struct {
	Base  float64 `yaml:"base"`
	Scale float64 `yaml:"scale"`
	Rate  float64 `yaml:"rate"`
}

// At evaluates the curve at t seconds.
func (c Curve) At(t float64) float64 {
	if t < 0 {
		t = 0
	}
	return c.Base / (1 + c.Scale*math.Log(1+c.Rate*t))
}

// LayoutConfig is the kitchen tile map. Legend keys are single characters.
type LayoutConfig struct {
	Rows   []string                 `yaml:"rows"`
	Legend map[string]StationConfig `yaml:"legend"`
}

// StationConfig describes what a layout tile becomes.
type StationConfig struct {
	Unit   string `yaml:"unit"`
	Source string `yaml:"source,omitempty"`
	Tool   string `yaml:"tool,omitempty"`
}

// DifficultyConfig defines how the order curves speed up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time", "deliveries", or "none"
	MaxAt int    `yaml:"max_at"` // seconds or deliveries at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeMultiplier float64 `yaml:"time_multiplier"` // extra clock speed fed to the order curves at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string keeps the config as is.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Rules converts the tuning into kitchen rules.
func (c KitchenConfig) Rules() kitchen.Rules {
	return kitchen.Rules{
		CookAfter:    c.Cooking.CookAfter,
		BurnAfter:    c.Cooking.BurnAfter,
		BurnEnabled:  c.Cooking.BurnEnabled,
		BurnInput:    c.Cooking.BurnInput,
		DefaultSize:  c.Sizes.Default,
		ChoppedSize:  c.Sizes.Chopped,
		CombinedSize: c.Sizes.Combined,
		ToolSize:     c.Sizes.Tool,
		ServeScore:   c.Scoring.ServeScore,
		ServeBonus:   c.Scoring.ServeBonus,
		TimerCap:     c.Scoring.TimerCap,
		Penalty:      c.Scoring.Penalty,
	}
}

// KitchenLayout converts the tile map into a kitchen layout.
func (c KitchenConfig) KitchenLayout() (kitchen.Layout, error) {
	l := kitchen.Layout{
		Rows:   c.Layout.Rows,
		Legend: make(map[rune]kitchen.Station, len(c.Layout.Legend)),
	}
	for key, st := range c.Layout.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return kitchen.Layout{}, fmt.Errorf("config: legend key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		l.Legend[r] = kitchen.Station{
			Unit:   kitchen.UnitType(st.Unit),
			Source: st.Source,
			Tool:   st.Tool,
		}
	}
	return l, nil
}

// Validate reports tuning that would break a round.
func (c KitchenConfig) Validate() error {
	switch {
	case c.Cooking.CookAfter <= 0:
		return fmt.Errorf("config: cooking.cook_after must be positive")
	case c.Cooking.BurnEnabled && c.Cooking.BurnAfter <= c.Cooking.CookAfter:
		return fmt.Errorf("config: cooking.burn_after must exceed cook_after")
	case c.Scoring.StartTimer <= 0:
		return fmt.Errorf("config: scoring.start_timer must be positive")
	case c.Scoring.TimerCap < c.Scoring.StartTimer:
		return fmt.Errorf("config: scoring.timer_cap must be at least start_timer")
	case c.Orders.MaxActive <= 0:
		return fmt.Errorf("config: orders.max_active must be positive")
	case c.Orders.Interval.Base <= 0 || c.Orders.Lifetime.Base <= 0:
		return fmt.Errorf("config: order curves need a positive base")
	case len(c.Layout.Rows) == 0:
		return fmt.Errorf("config: layout.rows is empty")
	}
	_, err := c.KitchenLayout()
	return err
}
