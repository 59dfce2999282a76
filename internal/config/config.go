// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ErrUnknownPreset is returned for difficulty names that are not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return DifficultyNormal, nil
	}
	if _, ok := presets()[p]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Preset scales a game's default tuning.
type Preset struct {
	ChanceScale float64 `yaml:"chance_scale"` // multiplies spawn probabilities
	PeriodScale float64 `yaml:"period_scale"` // multiplies the tick period
	ExtraLives  int     `yaml:"extra_lives"`  // added to games that have lives
	Leveling    *bool   `yaml:"leveling"`     // false freezes speed-ups; nil keeps them
}

// Presets returns the known presets by name.
func Presets() map[DifficultyPreset]Preset {
	return maps.Clone(presets())
}
