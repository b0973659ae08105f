package core

// RuntimeConfig is passed to a game when it is created.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one
	ModuleID int   // Identifier shown in logs, assigned by the platform
}

// DefaultConfig returns a RuntimeConfig sized for a classic terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
		ModuleID: 1,
	}
}

// GameState is what Game.State() reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Solved   int // Modules solved this session
	Strikes  int
}

// StepResult is returned by Game.Step().
type StepResult struct {
	State GameState
}
