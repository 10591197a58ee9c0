package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kitty-arcade/internal/core"
	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

func testFrame() kitty.Frame {
	return kitty.Frame{
		Width:  400,
		Height: 600,
		Actor:  kitty.Actor{X: 80, Y: 200, Size: 80, Vel: 2},
		Obstacles: []kitty.Obstacle{
			{X: 300, Width: 50, Top: 100, Gap: 160},
		},
		State: kitty.StateRunning,
	}
}

func TestTermDisplayStoresLatest(t *testing.T) {
	d := NewTermDisplay()

	_, ok := d.Frame()
	assert.False(t, ok)
	assert.Empty(t, d.Text())

	d.Draw(testFrame())
	d.ShowText("Score: 1 | High: 2")

	f, ok := d.Frame()
	require.True(t, ok)
	assert.Equal(t, 400.0, f.Width)
	assert.Equal(t, "Score: 1 | High: 2", d.Text())
}

func TestRenderWithoutFrameDrawsGround(t *testing.T) {
	d := NewTermDisplay()
	s := core.NewScreen(20, 10)

	d.Render(s)

	assert.Equal(t, strings.Repeat(string(GroundChar), 20), s.Row(9))
	assert.Equal(t, strings.Repeat(" ", 20), s.Row(0))
}

func TestRenderScalesField(t *testing.T) {
	d := NewTermDisplay()
	d.Draw(testFrame())

	// 40x61 screen: 60 playfield rows, so one cell is 10x10 field units.
	s := core.NewScreen(40, 61)
	d.Render(s)

	// Kitty covers cells 8..15 x 20..27.
	assert.Equal(t, core.ColorYellow, s.GetCell(8, 20).Color)
	assert.Equal(t, core.ColorYellow, s.GetCell(15, 27).Color)
	assert.Equal(t, core.ColorDefault, s.GetCell(16, 20).Color)

	// Falling kitty shows the down glyph at its centre.
	assert.Equal(t, KittyDownChar, s.Get(12, 24))

	// Pipe top barrier spans rows 0..9, the gap 10..25, the bottom 26..59.
	assert.Equal(t, core.ColorPink, s.GetCell(30, 0).Color)
	assert.Equal(t, core.ColorPink, s.GetCell(34, 9).Color)
	assert.Equal(t, core.ColorDefault, s.GetCell(30, 10).Color)
	assert.Equal(t, core.ColorDefault, s.GetCell(30, 25).Color)
	assert.Equal(t, core.ColorPink, s.GetCell(30, 26).Color)
	assert.Equal(t, core.ColorPink, s.GetCell(30, 59).Color)

	assert.Equal(t, GroundChar, s.Get(0, 60))
}

func TestRenderRisingGlyph(t *testing.T) {
	f := testFrame()
	f.Actor.Vel = -3

	d := NewTermDisplay()
	d.Draw(f)
	s := core.NewScreen(40, 61)
	d.Render(s)

	assert.Equal(t, KittyUpChar, s.Get(12, 24))
}

func TestRenderClouds(t *testing.T) {
	f := testFrame()
	f.Actor.Y = 400
	f.Obstacles = nil
	f.Clouds = []kitty.Cloud{
		{X: 0, Y: 0, Size: 100, Opacity: 0.8},
		{X: 200, Y: 0, Size: 100, Opacity: 0.5},
	}

	d := NewTermDisplay()
	d.Draw(f)
	s := core.NewScreen(40, 61)
	d.Render(s)

	assert.Equal(t, CloudChar, s.Get(0, 0))
	assert.Equal(t, FaintCloudChar, s.Get(20, 0))
	// Height is 60% of the size.
	assert.Equal(t, CloudChar, s.Get(0, 5))
	assert.Equal(t, ' ', s.Get(0, 6))
}

func TestViewportKeepsSmallSprites(t *testing.T) {
	v := newViewport(400, 600, 4, 6)

	r := v.rect(core.Box{X: 10, Y: 10, W: 5, H: 5})
	assert.Equal(t, 1, r.W)
	assert.Equal(t, 1, r.H)

	empty := v.rect(core.Box{X: 10, Y: 10, W: 0, H: 0})
	assert.Equal(t, 0, empty.W)
	assert.Equal(t, 0, empty.H)
}
