package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
)

func newSetup(t *testing.T, variant string) SetupModel {
	t.Helper()
	return NewSetupModel(core.DefaultConfig(), config.DefaultMemoryConfig(), variant)
}

func updateSetup(t *testing.T, m SetupModel, msg tea.Msg) SetupModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SetupModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestSetupRejectsInvalidCount(t *testing.T) {
	tests := []struct {
		value string
		alert string
	}{
		{"7", "Enter an even number of cards."},
		{"", "Enter an even number of cards."},
		{"abc", "Enter an even number of cards."},
		{"32", "at most 30 cards"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			m := newSetup(t, memory.IDClassic)
			m.input.SetValue(tc.value)

			m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if !strings.Contains(m.alert, tc.alert) {
				t.Errorf("alert = %q, expected to contain %q", m.alert, tc.alert)
			}
			if m.selected {
				t.Error("invalid count must not start a game")
			}

			m = updateSetup(t, m, runeKey('z'))
			if m.alert != "" || m.input.Value() != tc.value {
				t.Errorf("dismissing the alert changed state: alert=%q value=%q", m.alert, m.input.Value())
			}
		})
	}
}

func TestSetupStart(t *testing.T) {
	m := newSetup(t, memory.IDRanked)
	m.input.SetValue("10")

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	res := m.Result()
	if res.GameID != memory.IDRanked || res.Config.CardCount != 10 || res.Quit {
		t.Errorf("Result() = %+v", res)
	}
}

func TestSetupVariantCycle(t *testing.T) {
	m := newSetup(t, memory.IDClassic)
	first := m.variants[m.cursor].ID

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.variants[m.cursor].ID == first {
		t.Error("tab should switch variant")
	}
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.variants[m.cursor].ID != first {
		t.Error("shift+tab should switch back")
	}
}

func TestSetupLeaderboardAndQuit(t *testing.T) {
	m := updateSetup(t, newSetup(t, ""), tea.KeyMsg{Type: tea.KeyCtrlL})
	if !m.Result().WantsLeaderboard {
		t.Error("ctrl+l should open the leaderboard")
	}

	m = updateSetup(t, newSetup(t, ""), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Result().Quit {
		t.Error("esc should quit")
	}
}
