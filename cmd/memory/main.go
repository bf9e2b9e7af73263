// memory is a card matching game for the terminal.
//
// Usage:
//
//	memory play              - Pick a card count and variant, then play
//	memory deal <count>      - Print a dealt deck and its layout
//	memory scores            - Show the leaderboard
//	memory scores clear      - Delete the leaderboard
//	memory variants          - List game variants
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for a reproducible deal
//	--db <path>      - Set database path (default: ~/.memory/storage.db)
//	--config <path>  - Load a custom memory.yaml
//	--log <path>     - Write a session log to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/leaderboard"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagVerbose bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - find the pairs in your terminal",
	Long: `Memory is a card matching game for the terminal. A shuffled deck of
paired motifs is dealt face down; flip two cards at a time and find every
pair as fast as you can.

Available commands:
  play      - Play (setup form, board, leaderboard)
  deal      - Print a dealt deck and its layout
  scores    - View or clear the leaderboard
  variants  - List game variants

Examples:
  memory play
  memory play --cards 16 --variant memory_ranked
  memory deal 12 --seed 42
  memory scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memory/storage.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom memory.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a session log to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every pair comparison")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires the logger and config path before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	memory.SetConfigPath(flagConfig)

	if flagLogPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
		Level:           level,
	})
	return nil
}

// loadConfig reads memory.yaml. A bad --config file is an error; the
// default search locations fall back silently.
func loadConfig() (config.MemoryConfig, error) {
	mc, err := config.LoadMemory(flagConfig)
	if err != nil {
		return config.MemoryConfig{}, fmt.Errorf("config: %w", err)
	}
	return mc, nil
}

// openBoard opens the leaderboard database. A failure is logged and
// reported as a nil board; the game runs without a leaderboard.
func openBoard(mc config.MemoryConfig) (*storage.Store, *leaderboard.Board) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("leaderboard unavailable", "db", flagDBPath, "err", err)
		return nil, nil
	}
	board := leaderboard.New(store,
		leaderboard.WithKey(mc.Leaderboard.Key),
		leaderboard.WithCapacity(mc.Leaderboard.Capacity),
	)
	return store, board
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
