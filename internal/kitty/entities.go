package kitty

import "github.com/vovakirdan/kitty-arcade/internal/core"

// Actor is the player-controlled kitty.
type Actor struct {
	X, Y float64 // Top-left corner in field units
	Size float64 // Square extent
	Vel  float64 // Vertical velocity, negative = up
}

// Box returns the actor's collision box.
func (a Actor) Box() core.Box {
	return core.Box{X: a.X, Y: a.Y, W: a.Size, H: a.Size}
}

// Rising reports whether the actor is moving up.
func (a Actor) Rising() bool {
	return a.Vel < 0
}

// Obstacle is a pipe pair: a barrier above Top and a barrier below Top+Gap.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Top    float64 // Y where the gap starts
	Gap    float64 // Gap height, fixed per obstacle
	Passed bool    // Whether the score for this obstacle was counted
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate where the bottom barrier starts.
func (o Obstacle) GapBottom() float64 {
	return o.Top + o.Gap
}

// TopBarrier returns the upper barrier box.
func (o Obstacle) TopBarrier() core.Box {
	return core.Box{X: o.X, Y: 0, W: o.Width, H: o.Top}
}

// BottomBarrier returns the lower barrier box reaching the field bottom.
func (o Obstacle) BottomBarrier(fieldH float64) core.Box {
	return core.Box{X: o.X, Y: o.GapBottom(), W: o.Width, H: fieldH - o.GapBottom()}
}

// Collides reports whether the actor hits the obstacle: their horizontal
// extents overlap and the actor pokes above the gap or below it.
func Collides(a Actor, o Obstacle) bool {
	box := a.Box()
	if !box.OverlapsX(core.Box{X: o.X, W: o.Width}) {
		return false
	}
	return box.Y < o.Top || box.Bottom() > o.GapBottom()
}

// Cloud is a decorative background element with no gameplay effect.
type Cloud struct {
	X, Y    float64
	Size    float64
	Speed   float64 // Leftward movement per tick
	Opacity float64 // 0..1
}

// Frame is a self-contained copy of everything a display needs to draw.
type Frame struct {
	Width, Height float64
	Actor         Actor
	Obstacles     []Obstacle
	Clouds        []Cloud
	Score         int
	HighScore     int
	State         State
	Tick          int
}
