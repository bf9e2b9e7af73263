package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var (
	flagCards   int
	flagVariant string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the memory game",
	Long: `Start the game. Without --cards the setup form asks for the card
count and variant; after each game you return to it.

Controls:
  Arrows/hjkl   - Move the cursor
  Space/Enter   - Flip the card under the cursor
  Mouse click   - Flip the clicked card
  R             - Restart with a new deal
  Q/Ctrl+C      - Quit

Examples:
  memory play
  memory play --cards 20
  memory play --variant memory_ranked --cards 12`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&flagCards, "cards", "n", 0, "Number of cards (even, skips the setup form)")
	playCmd.Flags().StringVar(&flagVariant, "variant", memory.IDClassic, "Game variant (see 'memory variants')")
}

func runPlay(_ *cobra.Command, _ []string) error {
	mc, err := loadConfig()
	if err != nil {
		return err
	}

	if !registry.Exists(flagVariant) {
		return fmt.Errorf("unknown variant %q, run 'memory variants' to see them", flagVariant)
	}
	if flagCards != 0 {
		if err := memory.ValidateCount(flagCards, mc.Deck); err != nil {
			return fmt.Errorf("--cards %d: %w", flagCards, err)
		}
	}

	store, board := openBoard(mc)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		Seed:      flagSeed,
		CardCount: flagCards,
	}
	opts := tui.Options{Board: board, Logger: logger, Tick: mc.Timing.Tick}

	variant := flagVariant
	showSetup := flagCards == 0

	for {
		if showSetup {
			res, err := tui.RunSetup(cfg, mc, variant)
			if err != nil {
				return err
			}
			cfg = res.Config
			if res.Quit {
				return nil
			}
			if res.WantsLeaderboard {
				goBack, err := tui.RunLeaderboard(board, cfg.ScreenW, cfg.ScreenH, logger)
				if err != nil || !goBack {
					return err
				}
				continue
			}
			variant = res.GameID
		}
		showSetup = true

		game, err := registry.Create(variant)
		if err != nil {
			return err
		}

		// Only the first deal honours --seed
		result, err := tui.Run(game, cfg, opts)
		cfg = result.Config
		cfg.Seed = 0
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		if result.WantsLeaderboard {
			goBack, err := tui.RunLeaderboard(board, cfg.ScreenW, cfg.ScreenH, logger)
			if err != nil || !goBack {
				return err
			}
		}
	}
}
