package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal colour.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorPink          // obstacles
	ColorYellow        // kitty
	ColorWhite         // clouds
	ColorGray          // faint clouds, ground
	ColorBrightRed     // game over banner
	ColorCyan          // HUD
)
