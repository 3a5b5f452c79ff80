package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKitchen loads the gameplay tuning.
// Search order: customPath -> ~/.kitchen/configs/kitchen.yaml -> ./configs/kitchen.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides
// the keys it sets.
func LoadKitchen(customPath string) (KitchenConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KitchenConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return KitchenConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("kitchen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "kitchen.yaml")); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

func embeddedDefault() KitchenConfig {
	var cfg KitchenConfig
	if err := yaml.Unmarshal(defaultKitchenYAML, &cfg); err != nil {
		return DefaultKitchenConfig()
	}
	return cfg
}

func parseOverDefaults(data []byte) (KitchenConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KitchenConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *KitchenConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.StartTimer = 150
		cfg.Scoring.TimerCap = 180
		cfg.Cooking.BurnEnabled = false
	case DifficultyHard:
		cfg.Scoring.StartTimer = 90
		cfg.Orders.MaxActive = 6
		cfg.Scoring.Penalty = 20
	}
}
