package core

// RuntimeConfig carries host settings into a game session.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed; 0 means the host picks one per session
	Difficulty string // Difficulty preset name, empty for the game default
	ConfigPath string // Optional YAML tuning override
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
