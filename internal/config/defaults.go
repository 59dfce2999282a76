package config

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/presets.yaml
var defaultPresetsYAML []byte

var presets = sync.OnceValue(func() map[DifficultyPreset]Preset {
	out := make(map[DifficultyPreset]Preset)
	if err := yaml.Unmarshal(defaultPresetsYAML, &out); err != nil {
		panic("config: embedded presets: " + err.Error())
	}
	return out
})

// GetDefaultYAML returns the embedded preset document.
func GetDefaultYAML() []byte {
	return defaultPresetsYAML
}
