package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/engine"
)

func baseConfig() engine.Config {
	return engine.Config{
		TickPeriod: 50 * time.Millisecond,
		PeriodStep: 5 * time.Millisecond,
		MinPeriod:  20 * time.Millisecond,
		Field:      engine.Field{Width: 100, Height: 100},
		Keymap:     engine.ArrowKeys(),
		Player:     engine.PlayerConfig{Enabled: true, Tag: "ship", Start: core.V(50, 90), Step: 5},
		Spawns: []engine.SpawnRule{
			{Kind: engine.KindObstacle, Tag: "rock", Chance: 0.5, ChancePerLevel: 0.1, SpeedPerLevel: 0.2, Velocity: core.V(0, 2)},
		},
		Lives: 3,
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadCustomPathOverlay(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "tuning.yaml", `
tick_period: 80ms
lives: 5
player:
  step: 10
spawns:
  - kind: collectible
    tag: star
    chance: 0.2
    edge: bottom
`)

	cfg, err := Load("demo", path, baseConfig())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickPeriod != 80*time.Millisecond {
		t.Errorf("TickPeriod = %v, expected 80ms", cfg.TickPeriod)
	}
	if cfg.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Lives)
	}
	if cfg.Player.Step != 10 || cfg.Player.Tag != "ship" {
		t.Errorf("Player = %+v, expected step 10 and tag kept", cfg.Player)
	}
	if len(cfg.Spawns) != 1 || cfg.Spawns[0].Tag != "star" || cfg.Spawns[0].Kind != engine.KindCollectible || cfg.Spawns[0].Edge != engine.EdgeBottom {
		t.Errorf("Spawns = %+v, expected the star rule only", cfg.Spawns)
	}
	if len(cfg.Keymap) == 0 {
		t.Error("Keymap lost by the overlay")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	bad := writeFile(t, t.TempDir(), "bad.yaml", "lives: [not a number")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml")},
		{"invalid yaml", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("demo", tt.path, baseConfig())
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if cfg.Lives != 3 {
				t.Errorf("Lives = %d, expected the default 3", cfg.Lives)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("demo", "", baseConfig())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Lives != 3 {
		t.Errorf("Lives without files = %d, expected 3", cfg.Lives)
	}

	writeFile(t, ".", filepath.Join("configs", "demo.yaml"), "lives: 4\n")
	cfg, _ = Load("demo", "", baseConfig())
	if cfg.Lives != 4 {
		t.Errorf("Lives from ./configs = %d, expected 4", cfg.Lives)
	}

	writeFile(t, home, filepath.Join(".arcade", "configs", "demo.yaml"), "lives: 6\n")
	cfg, _ = Load("demo", "", baseConfig())
	if cfg.Lives != 6 {
		t.Errorf("Lives from home = %d, expected 6", cfg.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name     string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, %v, expected %q", tt.name, got, err, tt.expected)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		chance float64
		period time.Duration
		lives  int
	}{
		{DifficultyEasy, 0.35, 63 * time.Millisecond, 5},
		{DifficultyNormal, 0.5, 50 * time.Millisecond, 3},
		{DifficultyHard, 0.7, 40 * time.Millisecond, 2},
	}
	for _, tt := range tests {
		base := baseConfig()
		cfg, err := Apply(base, tt.preset)
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", tt.preset, err)
		}
		if got := cfg.Spawns[0].Chance; got < tt.chance-1e-9 || got > tt.chance+1e-9 {
			t.Errorf("Apply(%s) chance = %v, expected %v", tt.preset, got, tt.chance)
		}
		if cfg.TickPeriod != tt.period {
			t.Errorf("Apply(%s) period = %v, expected %v", tt.preset, cfg.TickPeriod, tt.period)
		}
		if cfg.Lives != tt.lives {
			t.Errorf("Apply(%s) lives = %d, expected %d", tt.preset, cfg.Lives, tt.lives)
		}
		if base.Spawns[0].Chance != 0.5 {
			t.Errorf("Apply(%s) modified the base spawn table", tt.preset)
		}
	}
}

func TestApplyFixed(t *testing.T) {
	cfg, err := Apply(baseConfig(), DifficultyFixed)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("IsFixedPreset(fixed) = false")
	}
	if cfg.PeriodStep != 0 {
		t.Errorf("PeriodStep = %v, expected 0", cfg.PeriodStep)
	}
	if s := cfg.Spawns[0]; s.ChancePerLevel != 0 || s.SpeedPerLevel != 0 {
		t.Errorf("spawn rule still levels: %+v", s)
	}
	if got := cfg.PeriodFor(10); got != cfg.TickPeriod {
		t.Errorf("PeriodFor(10) = %v, expected %v", got, cfg.TickPeriod)
	}
}

func TestApplyKeepsSingleLifeGames(t *testing.T) {
	base := baseConfig()
	base.Lives = 0
	cfg, err := Apply(base, DifficultyEasy)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if cfg.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", cfg.Lives)
	}

	if _, err := Apply(base, "nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Apply(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestLoadWithPreset(t *testing.T) {
	isolate(t)
	cfg, err := LoadWithPreset("demo", "", "hard", baseConfig())
	if err != nil {
		t.Fatalf("LoadWithPreset() error = %v", err)
	}
	if cfg.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", cfg.Lives)
	}
	if _, err := LoadWithPreset("demo", "", "nightmare", baseConfig()); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("LoadWithPreset(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
}
