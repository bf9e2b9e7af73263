package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/leaderboard"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var flagYes bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the fastest ranked games, best first.

Examples:
  memory scores
  memory scores clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every leaderboard entry",
	Args:  cobra.NoArgs,
	RunE:  runScoresClear,
}

func init() {
	scoresClearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	scoresCmd.AddCommand(scoresClearCmd)
}

var errNoStorage = errors.New("cannot open leaderboard database")

func openBoardOrFail() (*storage.Store, *leaderboard.Board, string, error) {
	mc, err := loadConfig()
	if err != nil {
		return nil, nil, "", err
	}
	store, board := openBoard(mc)
	if store == nil {
		return nil, nil, "", fmt.Errorf("%w at %s", errNoStorage, flagDBPath)
	}
	return store, board, mc.Leaderboard.Key, nil
}

// lastUpdated returns when key was last written, or the zero time.
func lastUpdated(store *storage.Store, key string) time.Time {
	items, err := store.Items()
	if err != nil {
		logger.Warn("cannot list storage items", "err", err)
		return time.Time{}
	}
	for _, it := range items {
		if it.Key == key {
			return it.UpdatedAt
		}
	}
	return time.Time{}
}

func runScores(_ *cobra.Command, _ []string) error {
	store, board, key, err := openBoardOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := board.List()
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Println("Play 'memory play --variant memory_ranked' to set the first one!")
		return nil
	}

	fmt.Printf("  %-6s  %-16s  %7s  %5s  %s\n", "Rank", "Name", "Time", "Cards", "Date")
	fmt.Printf("  %-6s  %-16s  %7s  %5s  %s\n", "----", "----", "----", "-----", "----")
	for i, e := range entries {
		date := e.Date
		if t := e.ParseDate(); !t.IsZero() {
			date = t.Local().Format("2006-01-02 15:04")
		}
		// Medals are two cells wide
		rank := leaderboard.FormatRank(i + 1)
		pad := 6 - lipgloss.Width(rank)
		fmt.Printf("  %s%s  %-16s  %6.1fs  %5d  %s\n", rank, strings.Repeat(" ", max(0, pad)), e.Name, e.Time, e.Cards, date)
	}

	if t := lastUpdated(store, key); !t.IsZero() {
		fmt.Println()
		fmt.Printf("Last updated %s\n", t.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runScoresClear(_ *cobra.Command, _ []string) error {
	store, board, _, err := openBoardOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := board.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Leaderboard is already empty.")
		return nil
	}

	if !flagYes && !confirm(fmt.Sprintf("Delete all %d leaderboard entries?", len(entries))) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := board.Clear(); err != nil {
		return err
	}
	logger.Info("leaderboard cleared", "entries", len(entries))
	fmt.Println("Leaderboard cleared.")
	return nil
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
