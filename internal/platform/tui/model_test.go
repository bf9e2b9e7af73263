package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/leaderboard"
)

// memStore is an in-memory leaderboard.Storage.
type memStore map[string]string

func (m memStore) GetItem(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) SetItem(key, value string) error {
	m[key] = value
	return nil
}

func (m memStore) RemoveItem(key string) error {
	delete(m, key)
	return nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func click(g *memory.Game, id int) tea.MouseMsg {
	c := g.CardRect(id).Center()
	return tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// playToSummary deals a two-card game and matches the only pair.
func playToSummary(t *testing.T, g *memory.Game, board *leaderboard.Board) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 41, Seed: 9, CardCount: 2, Clock: clock}

	m := NewModel(g, cfg, Options{Board: board})
	m.Init()

	m, _ = update(t, m, click(g, 0))
	m, _ = update(t, m, click(g, 1))
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if !g.Session().Locked() {
		t.Fatal("pair should be pending after the tick")
	}

	clock.Advance(800 * time.Millisecond)
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}
	if m.phase != phasePlaying {
		t.Fatal("summary shown before the reveal delay")
	}

	clock.Advance(500 * time.Millisecond)
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if m.phase != phaseSummary {
		t.Fatalf("phase = %v, expected summary", m.phase)
	}
	return m, clock
}

func TestRankedSaveFlow(t *testing.T) {
	store := memStore{}
	board := leaderboard.New(store)
	m, _ := playToSummary(t, memory.NewRanked(), board)

	if !strings.Contains(m.View(), "Name for the leaderboard") {
		t.Error("ranked summary should prompt for a name")
	}

	// Empty name is refused with an alert
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.alert == "" || m.phase != phaseSummary {
		t.Fatalf("empty name: alert=%q phase=%v", m.alert, m.phase)
	}
	if len(store) != 0 {
		t.Fatal("empty name was saved")
	}

	// Any key dismisses the alert without typing
	m, _ = update(t, m, runeKey('x'))
	if m.alert != "" || m.nameInput.Value() != "" {
		t.Fatalf("dismiss: alert=%q value=%q", m.alert, m.nameInput.Value())
	}

	for _, r := range "ann" {
		m, _ = update(t, m, runeKey(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseDone || m.rank != 1 {
		t.Fatalf("after save: phase=%v rank=%d alert=%q", m.phase, m.rank, m.alert)
	}

	entries, _ := board.List()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	e := entries[0]
	if e.Name != "ann" || e.Time != 0.8 || e.Cards != 2 {
		t.Errorf("saved entry = %+v", e)
	}

	m, _ = update(t, m, runeKey('l'))
	if !m.Result().WantsLeaderboard {
		t.Error("l should open the leaderboard")
	}
}

func TestRankedSkip(t *testing.T) {
	store := memStore{}
	m, _ := playToSummary(t, memory.NewRanked(), leaderboard.New(store))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phaseDone || len(store) != 0 {
		t.Errorf("esc should skip saving: phase=%v store=%v", m.phase, store)
	}
}

func TestClassicSummary(t *testing.T) {
	m, _ := playToSummary(t, memory.New(), leaderboard.New(memStore{}))

	if strings.Contains(m.View(), "Name for the leaderboard") {
		t.Error("classic summary should not prompt for a name")
	}
	if !strings.Contains(m.View(), "0.8s") {
		t.Error("summary should show the final time")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Result().NewGame || cmd == nil {
		t.Error("enter should leave for a new game")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := memory.New()
	clock := core.NewManualClock(time.Unix(0, 0))
	m := NewModel(g, core.RuntimeConfig{ScreenW: 100, ScreenH: 41, Seed: 3, Clock: clock}, Options{})
	m.Init()

	m, _ = update(t, m, runeKey('r'))
	if m.gen != 1 {
		t.Fatalf("restart should start tick chain 1, got %d", m.gen)
	}

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("stale tick should not be rescheduled")
	}
	if g.Snapshot().Tick != 0 {
		t.Error("stale tick stepped the game")
	}

	_, cmd = update(t, m, TickMsg{Gen: 1})
	if cmd == nil {
		t.Error("current tick should schedule the next")
	}
	if g.Snapshot().Tick != 1 {
		t.Error("current tick should step the game")
	}
}

func TestKeysReachGame(t *testing.T) {
	g := memory.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 100, ScreenH: 41, Seed: 3, CardCount: 8, Clock: core.NewManualClock(time.Unix(0, 0))}, Options{})
	m.Init()

	m, _ = update(t, m, runeKey('l'))
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	update(t, m, TickMsg{Gen: m.gen})

	if !g.Session().Card(1).Flipped {
		t.Error("move right then space should flip card 1")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(memory.New(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Clock: core.NewManualClock(time.Unix(0, 0))}, Options{})
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.Result().Quit {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
