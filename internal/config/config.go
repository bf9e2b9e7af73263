// Package config provides YAML-based configuration for the memory game:
// motif pools, timing, per-variant layout and leaderboard settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Deck        DeckConfig               `yaml:"deck"`
	Assets      AssetsConfig             `yaml:"assets"`
	Timing      TimingConfig             `yaml:"timing"`
	Variants    map[string]VariantConfig `yaml:"variants"`
	Leaderboard LeaderboardConfig        `yaml:"leaderboard"`
}

// Pool is an inclusive range of image numbers.
type Pool struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Size returns the number of motifs in the pool.
func (p Pool) Size() int {
	if p.Last < p.First {
		return 0
	}
	return p.Last - p.First + 1
}

// DeckConfig bounds the deck: back motifs are unique per card, front
// motifs are shared by exactly two cards.
type DeckConfig struct {
	BackPool     Pool `yaml:"back_pool"`
	FrontPool    Pool `yaml:"front_pool"`
	MinCards     int  `yaml:"min_cards"`
	MaxCards     int  `yaml:"max_cards"`
	DefaultCards int  `yaml:"default_cards"`
}

// AssetsConfig describes where motif images live: <dir>/<n><ext>.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
	Ext string `yaml:"ext"`
}

// TimingConfig holds the scheduled delays.
type TimingConfig struct {
	Tick         time.Duration `yaml:"tick"`          // Stopwatch redraw interval
	ResolveDelay time.Duration `yaml:"resolve_delay"` // Second flip -> comparison
	RevealDelay  time.Duration `yaml:"reveal_delay"`  // Win -> completion summary
}

// VariantConfig is the per-variant layout and feature set.
type VariantConfig struct {
	MaxRow      int          `yaml:"max_row"`
	Sizing      SizingConfig `yaml:"sizing"`
	Leaderboard bool         `yaml:"leaderboard"`
}

// SizingConfig controls card dimensions in cells.
// With Fixed set only FixedW/FixedH are used.
type SizingConfig struct {
	Fixed   bool `yaml:"fixed"`
	FixedW  int  `yaml:"fixed_w"`
	FixedH  int  `yaml:"fixed_h"`
	MarginW int  `yaml:"margin_w"` // Horizontal space reserved around the board
	MarginH int  `yaml:"margin_h"` // Vertical space reserved for HUD and status
	Gap     int  `yaml:"gap"`
	AspectW int  `yaml:"aspect_w"`
	AspectH int  `yaml:"aspect_h"`
	MinW    int  `yaml:"min_w"`
	MaxW    int  `yaml:"max_w"`
	MinH    int  `yaml:"min_h"`
	MaxH    int  `yaml:"max_h"`
}

// LeaderboardConfig controls the persisted leaderboard collection.
type LeaderboardConfig struct {
	Key      string `yaml:"key"`
	Capacity int    `yaml:"capacity"`
}

// Variant returns the configuration for a variant, falling back to the
// classic layout for unknown names.
func (c MemoryConfig) Variant(name string) VariantConfig {
	if v, ok := c.Variants[name]; ok {
		return v
	}
	return c.Variants[VariantClassic]
}

// Variant names as they appear in the YAML file.
const (
	VariantClassic = "classic"
	VariantRanked  = "ranked"
)

// Validate reports the first inconsistency in the configuration.
func (c MemoryConfig) Validate() error {
	var errs []error

	d := c.Deck
	if d.BackPool.Size() == 0 {
		errs = append(errs, errors.New("deck.back_pool is empty"))
	}
	if d.FrontPool.Size() == 0 {
		errs = append(errs, errors.New("deck.front_pool is empty"))
	}
	if d.MinCards < 2 || d.MinCards%2 != 0 {
		errs = append(errs, fmt.Errorf("deck.min_cards must be an even number >= 2, got %d", d.MinCards))
	}
	if d.MaxCards < d.MinCards {
		errs = append(errs, fmt.Errorf("deck.max_cards (%d) is below min_cards (%d)", d.MaxCards, d.MinCards))
	}
	if d.DefaultCards < d.MinCards || d.DefaultCards > d.MaxCards || d.DefaultCards%2 != 0 {
		errs = append(errs, fmt.Errorf("deck.default_cards %d is outside [%d, %d] or odd", d.DefaultCards, d.MinCards, d.MaxCards))
	}

	t := c.Timing
	if t.Tick <= 0 || t.ResolveDelay <= 0 || t.RevealDelay <= 0 {
		errs = append(errs, errors.New("timing durations must be positive"))
	}

	if _, ok := c.Variants[VariantClassic]; !ok {
		errs = append(errs, errors.New("variants.classic is required"))
	}
	for name, v := range c.Variants {
		if v.MaxRow < 1 {
			errs = append(errs, fmt.Errorf("variants.%s.max_row must be positive", name))
		}
		s := v.Sizing
		if s.Fixed && (s.FixedW < 3 || s.FixedH < 3) {
			errs = append(errs, fmt.Errorf("variants.%s.sizing fixed size too small", name))
		}
		if !s.Fixed && (s.AspectW <= 0 || s.AspectH <= 0 || s.MinW > s.MaxW || s.MinH > s.MaxH) {
			errs = append(errs, fmt.Errorf("variants.%s.sizing is inconsistent", name))
		}
	}

	if c.Leaderboard.Key == "" || c.Leaderboard.Capacity <= 0 {
		errs = append(errs, errors.New("leaderboard key and capacity are required"))
	}

	return errors.Join(errs...)
}
