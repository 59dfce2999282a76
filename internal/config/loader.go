package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/minigames/internal/engine"
)

// Load overlays a YAML tuning file onto base, the game's built-in defaults.
// Keys missing from the file keep their default; lists in the file replace
// the default list.
// Search order: customPath -> ~/.arcade/configs/<slug>.yaml -> ./configs/<slug>.yaml -> base
func Load(slug, customPath string, base engine.Config) (engine.Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := slug + ".yaml"

	// Try user config directory
	if path := userConfigPath(filename); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := overlay(base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := overlay(base, data); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// LoadWithPreset loads the tuning for a game and applies a difficulty preset.
func LoadWithPreset(slug, customPath, difficulty string, base engine.Config) (engine.Config, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return base, err
	}
	cfg, err := Load(slug, customPath, base)
	if err != nil {
		return base, err
	}
	cfg, err = Apply(cfg, preset)
	if err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", slug, err)
	}
	return cfg, nil
}

func overlay(base engine.Config, data []byte) (engine.Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
