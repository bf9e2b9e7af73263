package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/leaderboard"
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Clear   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel is the Bubble Tea model for the leaderboard screen.
type LeaderboardModel struct {
	board      *leaderboard.Board
	entries    []leaderboard.Entry
	loadErr    error
	table      table.Model
	help       help.Model
	keys       LeaderboardKeyMap
	logger     *log.Logger
	width      int
	height     int
	confirming bool
	quitting   bool
	goingBack  bool
}

// NewLeaderboardModel creates a new leaderboard model.
func NewLeaderboardModel(board *leaderboard.Board, width, height int, logger *log.Logger) LeaderboardModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = width

	m := LeaderboardModel{
		board:  board,
		keys:   DefaultLeaderboardKeyMap(),
		help:   h,
		logger: logger,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the screen.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Time", Width: 8},
		{Title: "Cards", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
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

// load reads the collection and refreshes the table.
func (m *LeaderboardModel) load() {
	m.entries = nil
	m.loadErr = nil
	if m.board != nil {
		m.entries, m.loadErr = m.board.List()
		if m.loadErr != nil {
			m.logger.Error("leaderboard load failed", "err", m.loadErr)
		}
	}
	m.table.SetRows(entryRows(m.entries))
	m.table.GotoTop()
}

// entryRows formats entries in rank order.
func entryRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := e.Date
		if t := e.ParseDate(); !t.IsZero() {
			date = t.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			leaderboard.FormatRank(i + 1),
			e.Name,
			strconv.FormatFloat(e.Time, 'f', 1, 64) + "s",
			strconv.Itoa(e.Cards),
			date,
		}
	}
	return rows
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmKey(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			if m.board != nil && len(m.entries) > 0 {
				m.confirming = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(entryRows(m.entries))
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleConfirmKey answers the clear prompt. Anything but y cancels.
func (m LeaderboardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	if err := m.board.Clear(); err != nil {
		m.logger.Error("leaderboard clear failed", "err", err)
		m.loadErr = err
		return m, nil
	}
	m.logger.Info("leaderboard cleared")
	m.load()
	return m, nil
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("🏆 LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	switch {
	case m.confirming:
		b.WriteString(alertStyle.Render(fmt.Sprintf("Delete all %d entries? (y/n)", len(m.entries))))
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(alertStyle.Render(m.loadErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LeaderboardModel) renderTableContent() string {
	if m.board == nil {
		return mutedStyle.Italic(true).Padding(2, 4).Render("Leaderboard unavailable: no storage.")
	}
	if len(m.entries) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).Render("No records yet.\nFinish a ranked game to set one!")
	}
	return m.table.View()
}

// Entries returns the loaded collection.
func (m LeaderboardModel) Entries() []leaderboard.Entry {
	return m.entries
}

// IsGoingBack returns true if user wants to go back to setup.
func (m LeaderboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunLeaderboard runs the leaderboard screen.
// Returns true if user wants to go back, false if quitting.
func RunLeaderboard(board *leaderboard.Board, width, height int, logger *log.Logger) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLeaderboardModel(board, width, height, logger),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LeaderboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
