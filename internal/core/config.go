package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 30)
	Seed     int64 // RNG seed for map generation and spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Turn     int  // Turns resolved in the current episode
	GameOver bool // Whether the episode has ended
	Won      bool // Whether the ended episode was won
	Quit     bool // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
