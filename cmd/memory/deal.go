package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var flagPreview bool

var dealCmd = &cobra.Command{
	Use:   "deal <count>",
	Short: "Print a dealt deck and its layout",
	Long: `Deal a deck without starting the game: prints every slot with its
back and front image, the grid shape and the card size for the current
terminal.

Examples:
  memory deal 12
  memory deal 30 --variant memory_ranked --seed 7
  memory deal 8 --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().StringVar(&flagVariant, "variant", memory.IDClassic, "Game variant (see 'memory variants')")
	dealCmd.Flags().BoolVar(&flagPreview, "preview", false, "Also print the board as the game would draw it")
}

func runDeal(_ *cobra.Command, args []string) error {
	mc, err := loadConfig()
	if err != nil {
		return err
	}

	count, err := memory.ParseCount(args[0])
	if err == nil {
		err = memory.ValidateCount(count, mc.Deck)
	}
	if err != nil {
		return fmt.Errorf("deal %s: %w", args[0], err)
	}

	info, ok := registry.Info(flagVariant)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'memory variants' to see them", flagVariant)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width, height := terminalSize()

	vc := mc.Variant(memory.VariantFor(info.ID))

	cards := memory.BuildDeck(rand.New(rand.NewSource(seed)), count, mc.Deck, mc.Assets)
	grid := memory.NewGrid(count, vc.MaxRow)
	cardW, cardH := grid.CardSize(width, height, vc.Sizing)

	printDeal(os.Stdout, info.Title, seed, cards, grid, cardW, cardH, width, height)

	if flagPreview {
		game, err := registry.Create(flagVariant)
		if err != nil {
			return err
		}
		cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: seed, CardCount: count}
		game.Reset(cfg)
		screen := core.NewScreen(width, height)
		game.Render(screen)
		fmt.Println()
		fmt.Println(strings.TrimRight(screen.String(), " \n"))
	}
	return nil
}

func printDeal(w io.Writer, title string, seed int64, cards []memory.Card, grid memory.Grid, cardW, cardH, viewW, viewH int) {
	fmt.Fprintf(w, "%s - %d cards, seed %d\n\n", title, len(cards), seed)
	fmt.Fprintf(w, "  %-4s  %-16s  %-16s  %s\n", "Slot", "Back", "Front", "Pos")
	fmt.Fprintf(w, "  %-4s  %-16s  %-16s  %s\n", "----", "----", "-----", "---")
	for _, c := range cards {
		col, row := grid.Position(c.ID)
		fmt.Fprintf(w, "  %-4d  %-16s  %-16s  r%d c%d\n", c.ID, c.BackImage, c.FrontImage, row+1, col+1)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Grid: %d columns x %d rows\n", grid.Cols, grid.Rows)
	fmt.Fprintf(w, "Card: %dx%d cells on a %dx%d terminal\n", cardW, cardH, viewW, viewH)
}
