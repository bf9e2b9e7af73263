package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List game variants",
	Long:  `Shows every registered variant with its layout and leaderboard setting.`,
	Args:  cobra.NoArgs,
	RunE:  runVariants,
}

func runVariants(_ *cobra.Command, _ []string) error {
	mc, err := loadConfig()
	if err != nil {
		return err
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %-7s  %s\n", maxIDLen, "ID", "Title", "Row", "Cards")
	fmt.Printf("  %-*s  %-18s  %-7s  %s\n", maxIDLen, "--", "-----", "---", "-----")

	for _, g := range games {
		vc := mc.Variant(memory.VariantFor(g.ID))

		size := "fit to terminal"
		if vc.Sizing.Fixed {
			size = fmt.Sprintf("fixed %dx%d", vc.Sizing.FixedW, vc.Sizing.FixedH)
		}
		if g.Ranked {
			size += ", leaderboard"
		}
		fmt.Printf("  %-*s  %-18s  max %-3d  %s\n", maxIDLen, g.ID, g.Title, vc.MaxRow, size)
	}

	fmt.Println()
	fmt.Println("Run 'memory play --variant <id>' to play one.")
	return nil
}
