package core

// Action represents a semantic input, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, left click
	ActionStart             // Enter, R, Space on the start/game-over screen
	ActionScoreboard        // Tab - open run history
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
