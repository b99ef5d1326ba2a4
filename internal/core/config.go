package core

// RuntimeConfig is what the host hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation frames per second
	Seed     int64 // Fixes every random choice; 0 lets the host pick one
}

// DefaultConfig returns an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game the host shows and persists.
type GameState struct {
	Score    int
	Stage    int // 1-based; 0 before the first stage starts
	Lives    int // Ships left, the one in play included
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Step.
type StepResult struct {
	State GameState
}
