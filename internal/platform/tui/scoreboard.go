package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kitty-arcade/internal/storage"
)

const historyLimit = 100

// ScoreHistory is the read side of the run history.
type ScoreHistory interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	PlayerScores(gameID, player string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// scoreboardKeys are the bindings of the run table.
type scoreboardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Filter}, {k.Back, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mine/all")),
		Back:   key.NewBinding(key.WithKeys("esc", "b", "tab"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fc56a9"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var boardFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// ScoreboardModel lists the best finished runs, either everyone's or only
// the current player's.
type ScoreboardModel struct {
	history ScoreHistory
	gameID  string
	player  string
	mine    bool

	runs  []storage.ScoreEntry
	stats *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int

	back, quit bool
	// standalone quits the program on back instead of handing control back.
	standalone bool
}

// NewScoreboardModel creates a scoreboard and loads the runs. history may
// be nil; the board is then empty.
func NewScoreboardModel(history ScoreHistory, gameID, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		history: history,
		gameID:  gameID,
		player:  player,
		help:    help.New(),
		keys:    newScoreboardKeys(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.Reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	rows := max(m.height-9, 3) // title, stats, borders and help
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Player", Width: 14},
			{Title: "When", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#fc56a9"))
	t.SetStyles(s)
	return t
}

// Reload re-reads the runs and stats. Read errors leave the board empty.
func (m *ScoreboardModel) Reload() {
	m.runs, m.stats = nil, nil
	if m.history != nil {
		var runs []storage.ScoreEntry
		var err error
		if m.mine {
			runs, err = m.history.PlayerScores(m.gameID, m.player, historyLimit)
		} else {
			runs, err = m.history.TopScores(m.gameID, historyLimit)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.history.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		who := r.Player
		if who == "" {
			who = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			who,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			if m.player != "" {
				m.mine = !m.mine
				m.Reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.Reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit {
		return ""
	}

	title := "BEST RUNS"
	if m.mine {
		title = "BEST RUNS - " + m.player
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs yet.\nSlip past a pipe to get on the board!")
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no finished runs"
	}
	return fmt.Sprintf("best %d  ·  %d runs  ·  avg %.1f", m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore)
}

// Len returns the number of runs shown.
func (m ScoreboardModel) Len() int {
	return len(m.runs)
}

// IsGoingBack reports whether the user left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard shows the scoreboard as its own program.
func RunScoreboard(history ScoreHistory, gameID, player string, width, height int) error {
	m := NewScoreboardModel(history, gameID, player, width, height)
	m.standalone = true

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
