package core

import "time"

// RuntimeConfig is handed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score ever recorded
	GameOver  bool // The run is waiting for a continue or restart
	Paused    bool
	CanResume bool // A continue is still available
}

// Event is a notable thing that happened during a tick.
type Event int

const (
	EventNone Event = iota
	EventGameOver
	EventResumed
	EventRestarted
	EventNewHighScore
	EventCoinCollected
	EventThrustStarted
	EventSpringBounce
	EventPlatformBroken
)

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains the event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
