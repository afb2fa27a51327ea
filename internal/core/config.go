package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Persisted high score, loaded by the platform
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

// Mode is the session lifecycle state.
// Ready -> Playing -> GameOver -> Ready; no other transitions are legal.
type Mode int

const (
	ModeReady Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeReady:
		return "Ready"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode      Mode // Session lifecycle state
	Score     int  // Current session score
	HighScore int  // Best score seen, monotonically non-decreasing
	Paused    bool // Whether the game is paused
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Mode == ModeGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true on exactly the tick that transitioned the game to
	// GameOver. The platform uses it to persist the final score once.
	Ended bool
}
