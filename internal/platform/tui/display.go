package tui

import (
	"math"
	"sync"

	"github.com/vovakirdan/kitty-arcade/internal/core"
	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

// Visual characters for rendering
const (
	KittyChar      = '█'
	KittyUpChar    = '▲' // rising
	KittyDownChar  = '▼' // falling
	PipeChar       = '█'
	CloudChar      = '▒'
	FaintCloudChar = '░'
	GroundChar     = '═'
)

// faintOpacity is the opacity below which clouds use the faint glyph.
const faintOpacity = 0.6

// TermDisplay is the terminal implementation of kitty.Display. It keeps the
// latest frame and score line; Render scales the field onto a Screen.
type TermDisplay struct {
	mu    sync.Mutex
	frame kitty.Frame
	text  string
	drawn bool
}

// NewTermDisplay creates an empty display.
func NewTermDisplay() *TermDisplay {
	return &TermDisplay{}
}

// Draw stores the frame for the next render.
func (d *TermDisplay) Draw(f kitty.Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = f
	d.drawn = true
}

// ShowText stores the score line.
func (d *TermDisplay) ShowText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
}

// Text returns the last score line.
func (d *TermDisplay) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Frame returns the last frame and whether one was drawn yet.
func (d *TermDisplay) Frame() (kitty.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame, d.drawn
}

// Render draws the last frame into dst. The bottom row is the ground.
func (d *TermDisplay) Render(dst *core.Screen) {
	f, ok := d.Frame()
	dst.Clear()

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)
	if !ok || f.Width <= 0 || f.Height <= 0 {
		return
	}

	v := newViewport(f.Width, f.Height, dst.Width(), groundY)

	for _, c := range f.Clouds {
		ch, col := CloudChar, core.ColorWhite
		if c.Opacity < faintOpacity {
			ch, col = FaintCloudChar, core.ColorGray
		}
		dst.DrawRect(v.rect(core.Box{X: c.X, Y: c.Y, W: c.Size, H: c.Size * 0.6}), ch, col)
	}

	for _, o := range f.Obstacles {
		dst.DrawRect(v.rect(o.TopBarrier()), PipeChar, core.ColorPink)
		dst.DrawRect(v.rect(o.BottomBarrier(f.Height)), PipeChar, core.ColorPink)
	}

	body := v.rect(f.Actor.Box())
	dst.DrawRect(body, KittyChar, core.ColorYellow)
	cx, cy := body.X+body.W/2, body.Y+body.H/2
	dst.SetColored(cx, cy, tiltGlyph(f.Actor.Rising()), core.ColorBrightRed)
}

// tiltGlyph maps the actor's vertical direction to its face glyph.
func tiltGlyph(rising bool) rune {
	if rising {
		return KittyUpChar
	}
	return KittyDownChar
}

// viewport scales field units onto terminal cells.
type viewport struct {
	sx, sy float64
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / fieldW,
		sy: float64(rows) / fieldH,
	}
}

// rect converts a field box to cells. Anything with extent keeps at least
// one cell so small sprites never vanish.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if b.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
