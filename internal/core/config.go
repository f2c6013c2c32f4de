package core

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic field generation
	PlayerID string // Identity the player state is saved under

	// TimeScale is simulated seconds per wall-clock second. 0 means 1.
	TimeScale float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   40,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		PlayerID:  "local",
		TimeScale: 1,
	}
}
