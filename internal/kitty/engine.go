// Package kitty implements the kitty game loop: a kitty falls under gravity,
// jumps on input and must slip through the gaps of pipes scrolling in from
// the right. The engine owns all simulation state and pushes frames and
// score text to a Display; scheduling ticks is left to the platform.
package kitty

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitty-arcade/internal/config"
)

// GameID names the game in the run history.
const GameID = "kitty"

// Display receives the output of the engine. Calls happen while the engine
// lock is held, so implementations must not call back into the engine.
type Display interface {
	// Draw receives the render state after every tick.
	Draw(f Frame)
	// ShowText receives the score line.
	ShowText(text string)
}

// ScoreStore is the durable key-value store holding the high score.
type ScoreStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Options wires the engine's collaborators. Zero values are replaced with
// working defaults.
type Options struct {
	Display Display
	Store   ScoreStore
	Rand    RandomSource
	Logger  *log.Logger
}

// Engine is the game loop state machine. All methods are safe for
// concurrent use; Jump typically arrives from an input goroutine while the
// scheduler calls Tick.
type Engine struct {
	mu sync.Mutex

	cfg        config.KittyConfig
	difficulty *config.DifficultyManager
	display    Display
	store      ScoreStore
	rng        RandomSource
	logger     *log.Logger

	state     State
	actor     Actor
	obstacles []Obstacle
	clouds    []Cloud
	frame     int
	score     int
	highScore int
	speed     float64

	lastJump int64 // Millis of the last accepted jump
	jumped   bool  // Whether any jump was accepted yet
}

// New creates an engine in the idle state and reads the high score once.
// A configuration that fails validation is replaced by the defaults.
func New(cfg config.KittyConfig, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid game config, using defaults", "error", err)
		cfg = config.DefaultKittyConfig()
	}

	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		display:    opts.Display,
		store:      opts.Store,
		rng:        opts.Rand,
		logger:     logger,
		speed:      cfg.Physics.BaseSpeed,
		obstacles:  make([]Obstacle, 0, 8),
		clouds:     make([]Cloud, 0, 8),
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.actor = e.startActor()
	e.highScore = e.loadHighScore()
	return e
}

// Reset starts a fresh session.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.actor = e.startActor()
	e.obstacles = e.obstacles[:0]
	e.clouds = e.clouds[:0]
	e.frame = 0
	e.score = 0
	e.speed = e.cfg.Physics.BaseSpeed
	e.state = StateRunning

	e.display.ShowText(ScoreText(e.score, e.highScore))
}

// Jump gives the kitty an upward impulse. It is ignored unless a session is
// running, and when it comes within the debounce interval of the last
// accepted jump. Returns whether the jump was accepted.
func (e *Engine) Jump(nowMillis int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return false
	}
	if e.jumped && nowMillis-e.lastJump < e.cfg.Input.DebounceMillis {
		return false
	}
	e.lastJump = nowMillis
	e.jumped = true
	e.actor.Vel = e.cfg.Physics.JumpImpulse
	return true
}

// Tick advances the simulation by one frame. No-op unless running.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}

	e.frame++
	e.spawn()

	// Semi-implicit Euler: velocity first, then position.
	p := e.cfg.Physics
	e.actor.Vel = min(e.actor.Vel+p.Gravity, p.MaxFall)
	e.actor.Y += e.actor.Vel

	for i := range e.clouds {
		e.clouds[i].X -= e.clouds[i].Speed
	}
	for i := range e.obstacles {
		e.obstacles[i].X -= e.speed
	}

	hit := false
	for _, o := range e.obstacles {
		if Collides(e.actor, o) {
			hit = true
			break
		}
	}

	for i := range e.obstacles {
		o := &e.obstacles[i]
		if !o.Passed && o.Right() < e.actor.X {
			o.Passed = true
			e.score++
		}
	}

	e.prune()

	if hit || e.outOfBounds() {
		e.gameOver()
	}

	e.display.Draw(e.snapshot())
	if e.state == StateRunning {
		e.display.ShowText(ScoreText(e.score, e.highScore))
	}
}

// gameOver ends the session. Only the first call per session has an effect.
func (e *Engine) gameOver() {
	if e.state != StateRunning {
		return
	}
	e.state = StateGameOver

	if e.score > e.highScore {
		e.highScore = e.score
		e.saveHighScore()
	}

	e.display.ShowText(GameOverText(e.score, e.highScore))
}

// spawn runs the frame-cadence policies: obstacles, clouds and the speed ramp.
func (e *Engine) spawn() {
	if e.frame%e.cfg.Obstacles.SpawnEvery == 0 {
		e.spawnObstacle()
	}
	if e.frame%e.cfg.Clouds.SpawnEvery == 0 {
		e.spawnCloud()
	}
	if e.difficulty.IsStep(e.frame) {
		e.speed = e.difficulty.Speed(e.cfg.Physics.BaseSpeed, e.frame)
	}
}

func (e *Engine) spawnObstacle() {
	oc := e.cfg.Obstacles
	e.obstacles = append(e.obstacles, Obstacle{
		X:     e.cfg.Field.Width,
		Width: oc.Width,
		Top:   e.rng.Float64()*oc.TopRange + oc.TopMin,
		Gap:   oc.Gap,
	})
}

func (e *Engine) spawnCloud() {
	cc := e.cfg.Clouds
	c := Cloud{X: e.cfg.Field.Width + cc.EntryOffset}
	c.Y = e.rng.Float64()*cc.YRange + cc.YMin
	c.Size = e.rng.Float64()*cc.SizeRange + cc.SizeMin
	c.Speed = e.rng.Float64()*cc.SpeedRange + cc.SpeedMin
	c.Opacity = e.rng.Float64()*cc.OpacityRange + cc.OpacityMin
	e.clouds = append(e.clouds, c)
}

// prune drops clouds and obstacles that are fully past the left edge.
func (e *Engine) prune() {
	clouds := e.clouds[:0]
	for _, c := range e.clouds {
		if c.X+c.Size >= 0 {
			clouds = append(clouds, c)
		}
	}
	e.clouds = clouds

	obstacles := e.obstacles[:0]
	for _, o := range e.obstacles {
		if o.Right() >= 0 {
			obstacles = append(obstacles, o)
		}
	}
	e.obstacles = obstacles
}

func (e *Engine) outOfBounds() bool {
	return e.actor.Y < 0 || e.actor.Y+e.actor.Size > e.cfg.Field.Height
}

func (e *Engine) startActor() Actor {
	return Actor{X: e.cfg.Actor.X, Y: e.cfg.Actor.Y, Size: e.cfg.Actor.Size}
}

// snapshot copies the render state. Caller holds the lock.
func (e *Engine) snapshot() Frame {
	return Frame{
		Width:     e.cfg.Field.Width,
		Height:    e.cfg.Field.Height,
		Actor:     e.actor,
		Obstacles: append([]Obstacle(nil), e.obstacles...),
		Clouds:    append([]Cloud(nil), e.clouds...),
		Score:     e.score,
		HighScore: e.highScore,
		State:     e.state,
		Tick:      e.frame,
	}
}

// Snapshot returns a copy of the current render state.
func (e *Engine) Snapshot() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// State returns the session state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Running reports whether a session is in progress.
func (e *Engine) Running() bool {
	return e.State() == StateRunning
}

// IsGameOver reports whether the last session ended.
func (e *Engine) IsGameOver() bool {
	return e.State() == StateGameOver
}

// Score returns the score of the current or last session.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// HighScore returns the best score across sessions.
func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highScore
}

// Speed returns the current obstacle speed per tick.
func (e *Engine) Speed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Frame returns the number of ticks in the current session.
func (e *Engine) Frame() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Text returns the score line matching the current state.
func (e *Engine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateGameOver {
		return GameOverText(e.score, e.highScore)
	}
	return ScoreText(e.score, e.highScore)
}

// ScoreText formats the in-play score line.
func ScoreText(score, high int) string {
	return fmt.Sprintf("Score: %d | High: %d", score, high)
}

// GameOverText formats the final score line.
func GameOverText(score, high int) string {
	return fmt.Sprintf("Game Over | Score: %d | High: %d", score, high)
}

type nopDisplay struct{}

func (nopDisplay) Draw(Frame)      {}
func (nopDisplay) ShowText(string) {}
