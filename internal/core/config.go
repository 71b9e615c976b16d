package core

// RuntimeConfig is passed to the game on every reset.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	Seed       int64   // RNG seed, 0 means time-based
	Spawn4Prob float64 // Probability of spawning a 4, 0 means engine default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// GameState is the game status the platform reads after every step.
type GameState struct {
	Moves   int  // Moves that changed the board
	Spawns  int  // Tiles spawned, including the two starting tiles
	MaxTile int  // Largest tile on the board
	Size    int  // Board dimension
	Paused  bool // Whether input is currently ignored
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	Moved bool // The frame's move changed the board
}
