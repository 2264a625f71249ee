package core

// RuntimeConfig contains configuration passed to a session at initialization.
// The simulation uses the screen size only for rendering; world dimensions
// come from the tuning config.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second requested from the front-end
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseVictory
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Phase    Phase   // Running, victory or game over
	Paused   bool    // Whether the session is paused
	Kills    int     // Enemies and machinegunners destroyed
	Climbed  int     // Best climbed height in tiles
	Elapsed  float64 // Simulated seconds since the session started
	GameOver bool    // True once Phase leaves PhaseRunning
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
