package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the built-in configuration. It mirrors
// defaults/memory.yaml and is used if the embedded file cannot be parsed.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Deck: DeckConfig{
			BackPool:     Pool{First: 1, Last: 30},
			FrontPool:    Pool{First: 31, Last: 45},
			MinCards:     2,
			MaxCards:     30,
			DefaultCards: 12,
		},
		Assets: AssetsConfig{
			Dir: "images",
			Ext: ".jpg",
		},
		Timing: TimingConfig{
			Tick:         100 * time.Millisecond,
			ResolveDelay: 800 * time.Millisecond,
			RevealDelay:  500 * time.Millisecond,
		},
		Variants: map[string]VariantConfig{
			VariantClassic: {
				MaxRow: 7,
				Sizing: SizingConfig{
					MarginW: 4,
					MarginH: 6,
					Gap:     1,
					AspectW: 9,
					AspectH: 5,
					MinW:    7,
					MaxW:    18,
					MinH:    4,
					MaxH:    9,
				},
			},
			VariantRanked: {
				MaxRow:      8,
				Leaderboard: true,
				Sizing: SizingConfig{
					Fixed:  true,
					FixedW: 9,
					FixedH: 5,
					Gap:    1,
				},
			},
		},
		Leaderboard: LeaderboardConfig{
			Key:      "memoryGameLeaderboard",
			Capacity: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
