package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/gridcraft/internal/registry"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

const (
	maxScores    = 100 // Rounds loaded per variant
	roundIDWidth = 36  // A full UUID
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Recent  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the help bar.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Recent, k.Back, k.Quit}
}

// FullHelp returns the same bindings in one group.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Variant: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		Recent:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded rounds, one variant at a time.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	recent    bool // Most recent rounds instead of the best
	store     *storage.Store
	scores    []storage.ScoreEntry
	best      int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered
// variant. A nil store shows empty lists.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

// columns sizes the table to the screen. The round ID is shown only when
// it fits in full.
func (m ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 5},
		{Title: "Combo", Width: 5},
		{Title: "Time", Width: 5},
		{Title: "When", Width: 14},
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2 // Cell padding
	}
	if m.width-4-used >= roundIDWidth+2 {
		cols = append(cols, table.Column{Title: "Round", Width: roundIDWidth})
	}
	return cols
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the rounds and best score of the current variant.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.best = 0
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		var (
			scores []storage.ScoreEntry
			err    error
		)
		if m.recent {
			scores, err = m.store.RecentRounds(id, maxScores)
		} else {
			scores, err = m.store.TopScores(id, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if best, err := m.store.HighScoreSlot(id).LoadHighScore(); err == nil {
			m.best = best
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	withID := len(m.table.Columns()) > 6

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			humanize.Comma(int64(s.Score)),
			fmt.Sprintf("%d", s.Lines),
			fmt.Sprintf("x%d", s.BestCombo),
			fmt.Sprintf("%.0fs", s.Seconds),
			humanize.Time(s.CreatedAt),
		}
		if withID {
			row = append(row, s.RoundID)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			if len(m.games) > 0 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = -1
				}
				m.current = (m.current + step + len(m.games)) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST ROUNDS"
	if m.recent {
		title = "RECENT ROUNDS"
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, title, m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	body := emptyStyle.Render("No rounds recorded yet.\nFinish a round to get on the board.")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body)))
	b.WriteString("\n")

	b.WriteString(centerText("Best: "+formatScore(m.best), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(menuHintStyle, m.help.View(m.keys), m.width))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
