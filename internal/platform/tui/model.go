package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/leaderboard"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// DefaultTick is the stopwatch redraw interval.
const DefaultTick = 100 * time.Millisecond

// Rows below the board reserved for the help line.
const helpHeight = 1

// playPhase is where the player is within one game.
type playPhase int

const (
	phasePlaying playPhase = iota
	phaseSummary           // Completion panel, ranked games ask for a name
	phaseDone              // Result recorded or skipped
)

// resolver is implemented by games that report each pair comparison.
type resolver interface {
	TakeResolutions() []memory.Resolution
}

// resizer is implemented by games that can re-layout without a reset.
type resizer interface {
	Resize(w, h int)
}

// Options configures a board run.
type Options struct {
	Board  *leaderboard.Board // nil disables saving
	Logger *log.Logger        // nil discards
	Tick   time.Duration      // zero means DefaultTick
}

// Model is the Bubble Tea model for playing one variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	board      *leaderboard.Board
	logger     *log.Logger
	tick       time.Duration
	gen        int
	width      int
	height     int

	phase     playPhase
	ranked    bool
	nameInput textinput.Model
	alert     string
	final     time.Duration
	saved     *leaderboard.Entry
	rank      int

	quitting         bool
	newGame          bool
	wantsLeaderboard bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(1, height-helpHeight)

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 24
	ti.Width = 24

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		board:      opts.Board,
		logger:     opts.Logger,
		tick:       opts.Tick,
		width:      width,
		height:     height,
		ranked:     registry.IsRanked(game) && opts.Board != nil,
		nameInput:  ti,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logStart()
	return tickCmd(m.tick, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.phase == phasePlaying && m.alert == "" {
			m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSummary:
		return m.handleSummaryKey(msg)
	case phaseDone:
		return m.handleDoneKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart:
		return m.restart()
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.ranked {
		return m.handleDoneKey(msg)
	}

	switch msg.String() {
	case "esc":
		m.logger.Info("leaderboard entry skipped", "game", m.game.ID())
		m.phase = phaseDone
		m.nameInput.Blur()
		return m, nil
	case "enter":
		return m.saveResult()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.newGame = true
		return m, tea.Quit
	case "r":
		return m.restart()
	case "l":
		if m.board != nil {
			m.wantsLeaderboard = true
			return m, tea.Quit
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveResult records the final time under the typed name.
func (m Model) saveResult() (tea.Model, tea.Cmd) {
	secs := memory.Seconds(m.final)
	cards := m.cardCount()

	entry, rank, err := m.board.Save(m.nameInput.Value(), secs, cards)
	switch {
	case errors.Is(err, leaderboard.ErrEmptyName):
		m.alert = "Please enter a name."
		return m, nil
	case err != nil:
		m.logger.Error("leaderboard save failed", "err", err)
		m.alert = fmt.Sprintf("Could not save: %v", err)
		return m, nil
	}

	m.logger.Info("leaderboard entry saved", "name", entry.Name, "time", entry.Time, "cards", entry.Cards, "rank", rank)
	m.saved = &entry
	m.rank = rank
	m.phase = phaseDone
	m.nameInput.Blur()
	return m, nil
}

// restart discards the current session and deals a new one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.phase = phasePlaying
	m.saved = nil
	m.rank = 0
	m.final = 0
	m.nameInput.Reset()
	m.nameInput.Blur()
	m.logStart()

	// Ticks from the previous chain are ignored
	m.gen++
	return m, tickCmd(m.tick, m.gen)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.logResolutions()

	if result.State.GameOver && !m.gameState.GameOver {
		m.final = result.State.Elapsed
		m.logger.Info("all pairs found", "game", m.game.ID(), "time", memory.FormatSeconds(m.final))
	}
	m.gameState = result.State

	var cmd tea.Cmd
	if m.phase == phasePlaying && m.gameState.Summary {
		m.phase = phaseSummary
		if m.ranked {
			cmd = m.nameInput.Focus()
		}
	}

	// Keep ticking until the result is on screen
	if m.phase == phasePlaying {
		return m, tea.Batch(cmd, tickCmd(m.tick, m.gen))
	}
	return m, cmd
}

func (m Model) logStart() {
	if g, ok := m.game.(interface{ ConfigError() error }); ok && g.ConfigError() != nil {
		m.logger.Warn("config not loaded, using defaults", "err", g.ConfigError())
	}
	m.logger.Info("game started", "game", m.game.ID(), "cards", m.cardCount(), "seed", m.config.Seed)
}

func (m Model) logResolutions() {
	r, ok := m.game.(resolver)
	if !ok {
		return
	}
	for _, res := range r.TakeResolutions() {
		m.logger.Debug("pair resolved", "a", res.A, "b", res.B, "matched", res.Matched, "won", res.Won)
	}
}

func (m Model) cardCount() int {
	if g, ok := m.game.(interface{ CardCount() int }); ok {
		return g.CardCount()
	}
	return m.config.CardCount
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".memory", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.alert != "" {
		return renderAlert(m.alert, m.width, m.height)
	}

	switch m.phase {
	case phaseSummary, phaseDone:
		return renderModal(m.summaryView(), m.width, m.height)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

func (m Model) summaryView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎉 " + memory.StatusWin))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Time  %s\n", memory.FormatSeconds(m.final))
	fmt.Fprintf(&b, "Cards %d\n\n", m.cardCount())

	if m.phase == phaseSummary && m.ranked {
		b.WriteString("Name for the leaderboard:\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("enter: save  esc: skip"))
		return b.String()
	}

	if m.saved != nil {
		if m.rank > 0 {
			fmt.Fprintf(&b, "Saved as %s, rank %s\n\n", m.saved.Name, leaderboard.FormatRank(m.rank))
		} else {
			fmt.Fprintf(&b, "Saved as %s, outside the top %d\n\n", m.saved.Name, m.board.Capacity())
		}
	}

	hint := "enter: new game  r: replay  q: quit"
	if m.board != nil {
		hint = "enter: new game  r: replay  l: leaderboard  q: quit"
	}
	b.WriteString(mutedStyle.Render(hint))
	return b.String()
}

// PlayResult holds the outcome of a board run.
type PlayResult struct {
	Config           core.RuntimeConfig
	NewGame          bool
	WantsLeaderboard bool
	Quit             bool
}

// Result reports what the player chose when the program ended.
func (m Model) Result() PlayResult {
	cfg := m.config
	cfg.ScreenH = m.height
	return PlayResult{
		Config:           cfg,
		NewGame:          m.newGame,
		WantsLeaderboard: m.wantsLeaderboard,
		Quit:             m.quitting,
	}
}

// Run plays game until the player quits or leaves the completion panel.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (PlayResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
