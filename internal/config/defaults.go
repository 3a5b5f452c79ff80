package config

import (
	_ "embed"

	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// DefaultKitchenConfig returns the hardcoded tuning, used when the embedded
// YAML cannot be parsed.
func DefaultKitchenConfig() KitchenConfig {
	rules := kitchen.DefaultRules()
	layout := kitchen.DefaultLayout()

	legend := make(map[string]StationConfig, len(layout.Legend))
	for r, st := range layout.Legend {
		legend[string(r)] = StationConfig{Unit: string(st.Unit), Source: st.Source, Tool: st.Tool}
	}

	return KitchenConfig{
		Cooking: CookingConfig{
			CookAfter:   rules.CookAfter,
			BurnAfter:   rules.BurnAfter,
			BurnEnabled: rules.BurnEnabled,
			BurnInput:   rules.BurnInput,
		},
		Sizes: SizeConfig{
			Default:  rules.DefaultSize,
			Chopped:  rules.ChoppedSize,
			Combined: rules.CombinedSize,
			Tool:     rules.ToolSize,
		},
		Scoring: ScoringConfig{
			StartTimer: 120,
			ServeScore: rules.ServeScore,
			ServeBonus: rules.ServeBonus,
			TimerCap:   rules.TimerCap,
			Penalty:    rules.Penalty,
		},
		Orders: OrdersConfig{
			MaxActive:        5,
			FirstInterval:    40,
			Interval:         Curve{Base: 40, Scale: 10, Rate: 0.001},
			Lifetime:         Curve{Base: 60, Scale: 25, Rate: 0.0002},
			IdleSpeedup:      10,
			TutorialLifetime: kitchen.DefaultOrderLifetime,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				TimeMultiplier: 1.0,
			},
		},
		Layout: LayoutConfig{
			Rows:   layout.Rows,
			Legend: legend,
		},
	}
}

// DefaultYAML returns the embedded default kitchen.yaml.
func DefaultYAML() []byte {
	return defaultKitchenYAML
}
