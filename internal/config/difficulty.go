package config

import "math"

// DifficultyManager turns round progress into a difficulty level and the
// effective clock fed to the order curves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the elapsed
// round time and the number of delivered orders.
func (d *DifficultyManager) Level(elapsed float64, delivered int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "time":
		progress = elapsed / maxAt
	case "deliveries":
		progress = float64(delivered) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EffectiveTime scales the elapsed time by the current level, so harder
// rounds reach short spawn intervals and lifetimes sooner.
func (d *DifficultyManager) EffectiveTime(elapsed float64, delivered int) float64 {
	level := d.Level(elapsed, delivered)
	return elapsed * (1.0 + level*d.cfg.Scaling.TimeMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
