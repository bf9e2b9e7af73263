// Package tui provides the Bubble Tea screens for the memory game: the
// setup form, the board, the completion summary and the leaderboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a game step and a stopwatch redraw.
// Gen identifies the tick chain; a restart starts a new chain and ticks
// from the old one are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of chain gen.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
