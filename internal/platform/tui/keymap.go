package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kitty-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Space doubles as jump and start; the model decides based on state.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "up", "w", "k":
		return core.ActionJump
	case "enter", "r":
		return core.ActionStart
	case "tab":
		return core.ActionScoreboard
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to an action. A left click jumps,
// like clicking the canvas.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}
