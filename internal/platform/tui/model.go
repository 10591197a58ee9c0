package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitty-arcade/internal/config"
	"github.com/vovakirdan/kitty-arcade/internal/core"
	"github.com/vovakirdan/kitty-arcade/internal/kitty"
)

// Store is the persistence the terminal frontend needs: the high score
// key-value pair for the engine and the run history for the scoreboard.
type Store interface {
	kitty.ScoreStore
	ScoreHistory
	SaveScore(gameID, player string, score int) (int64, error)
}

// Model is the Bubble Tea model for a kitty session. It feeds key presses
// to the engine, schedules ticks while a session runs and paints whatever
// the engine last pushed to its display.
type Model struct {
	engine  *kitty.Engine
	display *TermDisplay
	store   Store
	logger  *log.Logger
	keys    *KeyMapper
	screen  *core.Screen
	config  core.RuntimeConfig

	player  string
	started time.Time

	scoreboard ScoreboardModel
	showScores bool
	ticking    bool
	scoreSaved bool // Whether the finished run was recorded
	quitting   bool
}

// NewModel creates a model with its own engine. store may be nil, in which
// case nothing is persisted.
func NewModel(kcfg config.KittyConfig, store Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	display := NewTermDisplay()

	opts := kitty.Options{
		Display: display,
		Logger:  logger,
	}
	if store != nil {
		opts.Store = store
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}

	var history ScoreHistory
	if store != nil {
		history = store
	}

	return Model{
		engine:     kitty.New(kcfg, opts),
		display:    display,
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		player:     player,
		started:    time.Now(),
		scoreboard: NewScoreboardModel(history, kitty.GameID, player, cfg.ScreenW, cfg.ScreenH),
	}
}

// Engine exposes the engine driven by this model.
func (m Model) Engine() *kitty.Engine {
	return m.engine
}

// Init initializes the model. Nothing ticks until a session starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm), nil
	}

	if m.showScores {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))
	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))
	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies one mapped input action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionJump:
		if m.engine.Running() {
			m.engine.Jump(m.nowMillis())
			return m, nil
		}
		return m.start()

	case core.ActionStart:
		if m.engine.Running() {
			return m, nil
		}
		return m.start()

	case core.ActionScoreboard:
		if m.engine.Running() {
			return m, nil
		}
		m.scoreboard.Reload()
		m.scoreboard.back = false
		m.showScores = true
		return m, nil
	}

	return m, nil
}

// start begins a new session and the tick loop if it is not already running.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.engine.Reset()
	m.scoreSaved = false
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleTick advances the engine and reschedules only while running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.engine.Running() {
		m.ticking = false
		return m, nil
	}

	m.engine.Tick()

	if m.engine.IsGameOver() {
		m.ticking = false
		m.recordRun()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun appends the finished run to the history once.
func (m *Model) recordRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.engine.Score()
	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(kitty.GameID, m.player, score); err != nil {
		m.logger.Warn("could not record run", "score", score, "error", err)
	}
}

// handleResize processes window resize events. The engine keeps its own
// field size, so a running session is not disturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	next, _ := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	return m
}

// updateScoreboard forwards messages to the scoreboard until it is left.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.showScores = false
		return m, nil
	}
	return m, cmd
}

func (m Model) nowMillis() int64 {
	return time.Since(m.started).Milliseconds()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.display.Render(m.screen)

	switch m.engine.State() {
	case kitty.StateIdle:
		m.drawStartBox()
	case kitty.StateGameOver:
		m.drawGameOverBox()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(centerText(m.hudText(), max(m.screen.Width()-2, 0))))
	return b.String()
}

// hudText is the engine's last score line, or a zero score line before the
// first session.
func (m Model) hudText() string {
	if text := m.display.Text(); text != "" {
		return text
	}
	return kitty.ScoreText(0, m.engine.HighScore())
}

func (m Model) drawStartBox() {
	lines := []string{
		"KITTY",
		"",
		"Press Space to play",
		"Tab: scores   Q: quit",
	}
	m.drawCenteredBox(lines, core.ColorYellow)
}

func (m Model) drawGameOverBox() {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", m.engine.Score()),
		fmt.Sprintf("High: %d", m.engine.HighScore()),
		"",
		"R: retry   Tab: scores",
	}
	m.drawCenteredBox(lines, core.ColorBrightRed)
}

// drawCenteredBox draws a framed message in the middle of the screen.
func (m Model) drawCenteredBox(lines []string, color core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	boxW := w + 4
	boxH := len(lines) + 2
	x := (m.screen.Width() - boxW) / 2
	y := (m.screen.Height() - boxH) / 2

	m.screen.DrawRect(core.NewRect(x, y, boxW, boxH), ' ', core.ColorDefault)
	m.screen.DrawBox(core.NewRect(x, y, boxW, boxH))
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		m.screen.DrawTextColored(y+1+i, l, c)
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(kcfg config.KittyConfig, store Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(kcfg, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks jump
	)

	_, err := p.Run()
	return err
}
