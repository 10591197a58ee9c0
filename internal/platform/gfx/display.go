// Package gfx is the windowed frontend for the kitty game, built on Ebiten.
// It draws the field at its native size with rotated kitty sprites and
// translucent clouds.
package gfx

import (
	"sync"

	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

// Display implements kitty.Display by keeping the latest frame and score
// line for the next Draw call of the window.
type Display struct {
	mu    sync.Mutex
	frame kitty.Frame
	text  string
	drawn bool
}

// NewDisplay creates an empty display.
func NewDisplay() *Display {
	return &Display{}
}

// Draw stores the frame.
func (d *Display) Draw(f kitty.Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = f
	d.drawn = true
}

// ShowText stores the score line.
func (d *Display) ShowText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
}

// Frame returns the last frame and whether one was drawn yet.
func (d *Display) Frame() (kitty.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame, d.drawn
}

// Text returns the last score line.
func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}
