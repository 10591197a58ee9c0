package kitty

// State is the session state of the engine.
type State int

const (
	// StateIdle is the state before the first session starts.
	StateIdle State = iota
	// StateRunning accepts Tick and Jump.
	StateRunning
	// StateGameOver is terminal for the session; only Reset leaves it.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
