package core

import "time"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in cells
	ScreenH   int   // Screen height in cells
	Seed      int64 // RNG seed; 0 means the platform picks one from the clock
	CardCount int   // Requested number of cards; games fall back to their default when invalid
	Clock     Clock // Time source; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// ClockOrSystem returns the configured clock or the system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock == nil {
		return SystemClock{}
	}
	return c.Clock
}

// GameState is the summary a game reports to the platform.
type GameState struct {
	Score    int           // Pairs matched so far
	GameOver bool          // All cards matched; the session is complete
	Summary  bool          // The completion summary is ready to be shown
	Paused   bool          // Input is not being accepted (window too small)
	Elapsed  time.Duration // Stopwatch reading, final once GameOver
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
