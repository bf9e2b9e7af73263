package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// SetupKeyMap defines the key bindings for the setup form.
type SetupKeyMap struct {
	Start       key.Binding
	Variant     key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Variant, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "variant"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// SetupModel asks for the card count and the variant.
type SetupModel struct {
	variants []registry.GameInfo
	cursor   int
	input    textinput.Model
	deck     config.DeckConfig
	keys     SetupKeyMap
	help     help.Model
	config   core.RuntimeConfig
	alert    string

	selected         bool
	quitting         bool
	wantsLeaderboard bool
}

// NewSetupModel creates the setup form. variant preselects a game ID.
func NewSetupModel(cfg core.RuntimeConfig, mc config.MemoryConfig, variant string) SetupModel {
	variants := registry.List()
	cursor := 0
	for i, v := range variants {
		if v.ID == variant {
			cursor = i
		}
	}

	count := cfg.CardCount
	if count == 0 {
		count = mc.Deck.DefaultCards
	}

	ti := textinput.New()
	ti.Prompt = "Cards: "
	ti.Placeholder = strconv.Itoa(mc.Deck.DefaultCards)
	ti.CharLimit = 3
	ti.Width = 4
	ti.SetValue(strconv.Itoa(count))
	ti.Focus()

	h := help.New()
	h.Width = cfg.ScreenW

	return SetupModel{
		variants: variants,
		cursor:   cursor,
		input:    ti,
		deck:     mc.Deck,
		keys:     DefaultSetupKeyMap(),
		help:     h,
		config:   cfg,
	}
}

// Init starts the cursor blink.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Leaderboard):
			m.wantsLeaderboard = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			if len(m.variants) > 0 {
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.variants) - 1
				}
				m.cursor = (m.cursor + step) % len(m.variants)
			}
			return m, nil

		case key.Matches(msg, m.keys.Start):
			return m.start()
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start validates the form. An invalid count raises an alert and
// changes nothing else.
func (m SetupModel) start() (tea.Model, tea.Cmd) {
	count, err := memory.ParseCount(m.input.Value())
	if err == nil {
		err = memory.ValidateCount(count, m.deck)
	}
	if err != nil {
		m.alert = capitalize(err.Error()) + "."
		return m, nil
	}
	if len(m.variants) == 0 {
		m.alert = "No game variants are registered."
		return m, nil
	}

	m.config.CardCount = count
	m.selected = true
	return m, tea.Quit
}

// View renders the setup form.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}
	if m.alert != "" {
		return renderAlert(m.alert, m.config.ScreenW, m.config.ScreenH)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("M E M O R Y"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Even number of cards, %d to %d.\n\n", m.deck.MinCards, m.deck.MaxCards)
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for i, v := range m.variants {
		cursor := "  "
		style := mutedStyle
		if i == m.cursor {
			cursor = "> "
			style = lipgloss.NewStyle().Bold(true)
		}
		label := v.Title
		if v.Ranked {
			label += "  (leaderboard)"
		}
		b.WriteString(style.Render(cursor + label))
		b.WriteString("\n")
	}

	form := lipgloss.Place(m.config.ScreenW, max(0, m.config.ScreenH-helpHeight), lipgloss.Center, lipgloss.Center,
		modalStyle.Render(b.String()))
	return form + "\n" + m.help.View(m.keys)
}

// SetupResult holds the result of running the setup form.
type SetupResult struct {
	GameID           string
	Config           core.RuntimeConfig
	WantsLeaderboard bool
	Quit             bool
}

// Result reports the form outcome.
func (m SetupModel) Result() SetupResult {
	result := SetupResult{Config: m.config}
	switch {
	case m.wantsLeaderboard:
		result.WantsLeaderboard = true
	case m.selected:
		result.GameID = m.variants[m.cursor].ID
	default:
		result.Quit = true
	}
	return result
}

// RunSetup shows the setup form and returns the selection.
func RunSetup(cfg core.RuntimeConfig, mc config.MemoryConfig, variant string) (SetupResult, error) {
	p := tea.NewProgram(
		NewSetupModel(cfg, mc, variant),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Config: cfg}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
