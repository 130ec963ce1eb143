package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Player score
	Length   int  // Player snake length, 0 while dead or tetrified
	GameOver bool // Player is dead and waiting for a respawn or restart
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// ScoreChanged is set when any actor's score moved this tick.
	ScoreChanged bool
}

// Standing is one line of a live scoreboard.
type Standing struct {
	Name   string
	Score  int
	Status string // alive, dying, dead, or block
	Color  Color
	Player bool
}

// MatchStats summarizes the player's match for history records.
type MatchStats struct {
	Score     int
	MaxLength int
	Frames    uint64
	Kills     int
	Deaths    int
	Meals     int
}
