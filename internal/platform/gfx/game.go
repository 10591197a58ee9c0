package gfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

// Engine is the part of the kitty engine the window drives.
type Engine interface {
	Reset()
	Jump(nowMillis int64) bool
	Tick()
	State() kitty.State
	Running() bool
	IsGameOver() bool
	Score() int
	HighScore() int
}

// Game implements ebiten.Game. Ebiten calls Update at the tick rate, which
// advances the engine while a session runs.
type Game struct {
	engine  Engine
	display *Display
	width   int
	height  int
	started time.Time

	// onGameOver is called once per finished session with its score.
	onGameOver func(score int)

	kittyImg *ebiten.Image
	cloudImg *ebiten.Image
}

// NewGame creates a window game for an engine that draws into display.
func NewGame(engine Engine, display *Display, width, height int) *Game {
	return &Game{
		engine:  engine,
		display: display,
		width:   width,
		height:  height,
		started: time.Now(),
	}
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch {
	case jumpPressed():
		g.press()
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if !g.engine.Running() {
			g.engine.Reset()
		}
	}

	g.step()
	return nil
}

// step advances a running session and reports its end once.
func (g *Game) step() {
	if !g.engine.Running() {
		return
	}
	g.engine.Tick()
	if g.engine.IsGameOver() && g.onGameOver != nil {
		g.onGameOver(g.engine.Score())
	}
}

func jumpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// press jumps while running and starts a session otherwise.
func (g *Game) press() {
	if g.engine.Running() {
		g.engine.Jump(time.Since(g.started).Milliseconds())
		return
	}
	g.engine.Reset()
}

// Draw renders the last frame the engine pushed.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.kittyImg == nil {
		g.kittyImg = newKittySprite()
		g.cloudImg = newCloudSprite()
	}

	screen.Fill(skyColor)

	f, ok := g.display.Frame()
	if ok {
		g.drawClouds(screen, f)
		g.drawPipes(screen, f)
		g.drawKitty(screen, f.Actor)
	}

	g.drawText(screen)
}

func (g *Game) drawClouds(screen *ebiten.Image, f kitty.Frame) {
	for _, c := range f.Clouds {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(c.Size/cloudW, c.Size*0.6/cloudH)
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.ScaleAlpha(float32(c.Opacity))
		screen.DrawImage(g.cloudImg, op)
	}
}

func (g *Game) drawPipes(screen *ebiten.Image, f kitty.Frame) {
	for _, o := range f.Obstacles {
		top := o.TopBarrier()
		vector.DrawFilledRect(screen, float32(top.X), float32(top.Y), float32(top.W), float32(top.H), pipeColor, false)
		bottom := o.BottomBarrier(f.Height)
		vector.DrawFilledRect(screen, float32(bottom.X), float32(bottom.Y), float32(bottom.W), float32(bottom.H), pipeColor, false)
	}
}

// drawKitty rotates the sprite about the actor's centre.
func (g *Game) drawKitty(screen *ebiten.Image, a kitty.Actor) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
	op.GeoM.Scale(a.Size/spriteSize, a.Size/spriteSize)
	op.GeoM.Rotate(tiltAngle(a.Rising()))
	op.GeoM.Translate(a.X+a.Size/2, a.Y+a.Size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.kittyImg, op)
}

func (g *Game) drawText(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), 20, shadowColor, false)
	ebitenutil.DebugPrintAt(screen, g.hudText(), 8, 2)

	if hint := g.hint(); hint != "" {
		ebitenutil.DebugPrintAt(screen, hint, 8, g.height/2)
	}
}

func (g *Game) hudText() string {
	if text := g.display.Text(); text != "" {
		return text
	}
	return kitty.ScoreText(0, g.engine.HighScore())
}

// hint is the centre message outside of a running session.
func (g *Game) hint() string {
	switch g.engine.State() {
	case kitty.StateIdle:
		return "Click or press Space to play"
	case kitty.StateGameOver:
		return "Click or press Space to try again"
	}
	return ""
}

// Layout keeps the logical screen at the field size; Ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Options configures the window.
type Options struct {
	Title string
	TPS   int
	Scale float64

	// OnGameOver receives the score of every finished session.
	OnGameOver func(score int)
}

// Run opens the window and blocks until it is closed. display must be the
// one the engine was created with.
func Run(engine Engine, display *Display, width, height int, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Kitty"
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(float64(width)*opts.Scale), int(float64(height)*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	g := NewGame(engine, display, width, height)
	g.onGameOver = opts.OnGameOver
	return ebiten.RunGame(g)
}
