package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Hosts fill it from CLI flags and the terminal or window size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window host)
	ScreenH  int   // Screen height in characters (or pixels for the window host)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session as seen by a host.
type GameState struct {
	Score  uint64 // Current score
	Tick   uint64 // Completed simulation ticks
	Paused bool   // Whether the host has paused ticking
}
