package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The field size is derived from the screen when the game config leaves it unset.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary of a game after a tick, used by the platform to
// decide what to do next (quit, save a result, toggle the cursor).
type GameState struct {
	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool // False while the start control is shown
	Paused    bool // True during the fixed pause after losing a ship
	Quit      bool // Quit was requested
}

// Signal reports a notable transition that happened during a tick.
type Signal int

const (
	SignalNone        Signal = iota
	SignalStarted            // Menu -> Active
	SignalWaveCleared        // Fleet destroyed, next level
	SignalShipLost           // Ship lost with ships remaining
	SignalGameOver           // Active -> Menu
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalStarted:
		return "started"
	case SignalWaveCleared:
		return "wave_cleared"
	case SignalShipLost:
		return "ship_lost"
	case SignalGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Signals []Signal
}

// Has returns true if the signal was raised during the tick.
func (r StepResult) Has(s Signal) bool {
	for _, got := range r.Signals {
		if got == s {
			return true
		}
	}
	return false
}
