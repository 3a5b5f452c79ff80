package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	emb := embeddedDefault()
	def := DefaultKitchenConfig()

	if emb.Rules() != def.Rules() {
		t.Fatalf("rules mismatch:\n embedded %+v\n default  %+v", emb.Rules(), def.Rules())
	}
	if emb.Orders != def.Orders {
		t.Fatalf("orders mismatch: %+v vs %+v", emb.Orders, def.Orders)
	}
	if emb.Scoring.StartTimer != def.Scoring.StartTimer {
		t.Fatalf("start timer = %v, want %v", emb.Scoring.StartTimer, def.Scoring.StartTimer)
	}
	if len(emb.Layout.Rows) != len(def.Layout.Rows) || len(emb.Layout.Legend) != len(def.Layout.Legend) {
		t.Fatalf("layout mismatch")
	}
	if err := emb.Validate(); err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
}

func TestDefaultRulesMatchKitchen(t *testing.T) {
	if got, want := DefaultKitchenConfig().Rules(), kitchen.DefaultRules(); got != want {
		t.Fatalf("Rules() = %+v, want %+v", got, want)
	}
}

func TestKitchenLayoutBuilds(t *testing.T) {
	l, err := embeddedDefault().KitchenLayout()
	if err != nil {
		t.Fatalf("KitchenLayout: %v", err)
	}
	if w, h := l.Size(); w != 8 || h != 8 {
		t.Fatalf("size = %dx%d, want 8x8", w, h)
	}
	if st := l.Legend['F']; st.Tool != "frying pan" {
		t.Fatalf("legend F = %+v", st)
	}
}

func TestKitchenLayoutRejectsLongKey(t *testing.T) {
	cfg := DefaultKitchenConfig()
	cfg.Layout.Legend["xy"] = StationConfig{Unit: "bin"}
	if _, err := cfg.KitchenLayout(); err == nil {
		t.Fatal("expected error for two-character legend key")
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate should surface the legend error")
	}
}

func TestCurveAt(t *testing.T) {
	interval := Curve{Base: 40, Scale: 10, Rate: 0.001}
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 40},
		{-5, 40},
		{1000, 40 / (1 + 10*math.Log(2))},
	}
	for _, tt := range tests {
		if got := interval.At(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if interval.At(600) >= interval.At(60) {
		t.Fatal("curve should shrink over time")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KitchenConfig)
	}{
		{"cook_after", func(c *KitchenConfig) { c.Cooking.CookAfter = 0 }},
		{"burn_after", func(c *KitchenConfig) { c.Cooking.BurnAfter = c.Cooking.CookAfter }},
		{"start_timer", func(c *KitchenConfig) { c.Scoring.StartTimer = 0 }},
		{"timer_cap", func(c *KitchenConfig) { c.Scoring.TimerCap = 10 }},
		{"max_active", func(c *KitchenConfig) { c.Orders.MaxActive = 0 }},
		{"curve", func(c *KitchenConfig) { c.Orders.Lifetime.Base = 0 }},
		{"rows", func(c *KitchenConfig) { c.Layout.Rows = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultKitchenConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := DefaultKitchenConfig()
	cfg.Cooking.BurnEnabled = false
	cfg.Cooking.BurnAfter = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("burn_after is unused when burning is off: %v", err)
	}
}

func TestLoadKitchenCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	data := []byte("scoring:\n  penalty: 30\norders:\n  max_active: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKitchen(path)
	if err != nil {
		t.Fatalf("LoadKitchen: %v", err)
	}
	if cfg.Scoring.Penalty != 30 || cfg.Orders.MaxActive != 3 {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Scoring, cfg.Orders)
	}
	if cfg.Scoring.StartTimer != 120 || cfg.Cooking.CookAfter != 5 {
		t.Fatalf("defaults lost: %+v %+v", cfg.Scoring, cfg.Cooking)
	}
	if len(cfg.Layout.Legend) != len(DefaultKitchenConfig().Layout.Legend) {
		t.Fatalf("legend lost, got %d entries", len(cfg.Layout.Legend))
	}
}

func TestLoadKitchenErrors(t *testing.T) {
	if _, err := LoadKitchen(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("orders: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKitchen(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultKitchenConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Fatalf("difficulty = %+v", cfg.Difficulty)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultKitchenConfig()
	ApplyPreset(&cfg, "")
	if cfg.Difficulty != DefaultKitchenConfig().Difficulty {
		t.Fatal("empty preset should leave config untouched")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{TimeMultiplier: 1},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0.3},
		{50, 0.65},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.elapsed, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	if got := d.EffectiveTime(100, 0); math.Abs(got-200) > 1e-9 {
		t.Fatalf("EffectiveTime(100) = %v, want 200", got)
	}
}

func TestDifficultyDeliveriesAndDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "deliveries", MaxAt: 10},
	})
	if got := d.Level(999, 5); got != 0.5 {
		t.Fatalf("Level by deliveries = %v, want 0.5", got)
	}

	off := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 2})
	if off.IsEnabled() {
		t.Fatal("manager should be disabled")
	}
	if got := off.Level(1000, 100); got != 1 {
		t.Fatalf("disabled level = %v, want clamped initial 1", got)
	}
	if got := off.EffectiveTime(10, 0); got != 10 {
		t.Fatalf("EffectiveTime with zero multiplier = %v, want 10", got)
	}
}
