package memory

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func TestBuildDeckProperties(t *testing.T) {
	cfg := config.DefaultMemoryConfig()

	for count := 2; count <= 30; count += 2 {
		rng := rand.New(rand.NewSource(int64(count)))
		cards := BuildDeck(rng, count, cfg.Deck, cfg.Assets)

		if len(cards) != count {
			t.Fatalf("count=%d: got %d cards", count, len(cards))
		}

		backs := make(map[int]bool)
		fronts := make(map[string]int)
		for i, c := range cards {
			if c.ID != i {
				t.Errorf("count=%d: card %d has ID %d", count, i, c.ID)
			}
			if c.Matched || c.Flipped {
				t.Errorf("count=%d: card %d starts face up", count, i)
			}
			if c.BackMotif < 1 || c.BackMotif > 30 {
				t.Errorf("count=%d: back motif %d outside 1..30", count, c.BackMotif)
			}
			if c.FrontMotif < 31 || c.FrontMotif > 45 {
				t.Errorf("count=%d: front motif %d outside 31..45", count, c.FrontMotif)
			}
			if backs[c.BackMotif] {
				t.Errorf("count=%d: back motif %d repeated", count, c.BackMotif)
			}
			backs[c.BackMotif] = true
			fronts[c.FrontImage]++
		}

		if len(fronts) != count/2 {
			t.Errorf("count=%d: %d distinct fronts, expected %d", count, len(fronts), count/2)
		}
		for img, n := range fronts {
			if n != 2 {
				t.Errorf("count=%d: front %s appears %d times", count, img, n)
			}
		}
	}
}

func TestBuildDeckSixCards(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	cards := BuildDeck(rand.New(rand.NewSource(7)), 6, cfg.Deck, cfg.Assets)

	if len(cards) != 6 {
		t.Fatalf("got %d cards", len(cards))
	}
	if cols := Columns(6, 7); cols != 6 {
		t.Errorf("Columns(6, 7) = %d, expected 6", cols)
	}
	for _, c := range cards {
		if !strings.HasPrefix(c.BackImage, "images/") || !strings.HasSuffix(c.FrontImage, ".jpg") {
			t.Errorf("unexpected image paths %q, %q", c.BackImage, c.FrontImage)
		}
	}
}

func TestBuildDeckDeterministic(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	a := BuildDeck(rand.New(rand.NewSource(99)), 20, cfg.Deck, cfg.Assets)
	b := BuildDeck(rand.New(rand.NewSource(99)), 20, cfg.Deck, cfg.Assets)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("card %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	Shuffle(rand.New(rand.NewSource(1)), s)

	sorted := append([]int(nil), s...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("Shuffle lost or duplicated values: %v", s)
		}
	}

	// Degenerate inputs must not panic
	Shuffle(rand.New(rand.NewSource(1)), nil)
	Shuffle(rand.New(rand.NewSource(1)), []int{1})
}

func TestValidateCount(t *testing.T) {
	deck := config.DefaultMemoryConfig().Deck

	tests := []struct {
		name  string
		count int
		err   error
	}{
		{"zero", 0, ErrOddCount},
		{"negative", -4, ErrOddCount},
		{"one", 1, ErrOddCount},
		{"odd", 13, ErrOddCount},
		{"minimum", 2, nil},
		{"default", 12, nil},
		{"maximum", 30, nil},
		{"too many", 32, ErrTooManyCards},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCount(tc.count, deck)
			if tc.err == nil && err != nil {
				t.Errorf("ValidateCount(%d) = %v, expected nil", tc.count, err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("ValidateCount(%d) = %v, expected %v", tc.count, err, tc.err)
			}
		})
	}
}

func TestValidateCountSmallPools(t *testing.T) {
	deck := config.DefaultMemoryConfig().Deck

	fewFronts := deck
	fewFronts.FrontPool = config.Pool{First: 31, Last: 35}
	if err := ValidateCount(12, fewFronts); !errors.Is(err, ErrTooManyPairs) {
		t.Errorf("5 front motifs, 6 pairs: got %v", err)
	}

	fewBacks := deck
	fewBacks.BackPool = config.Pool{First: 1, Last: 10}
	if err := ValidateCount(12, fewBacks); !errors.Is(err, ErrTooManyPairs) {
		t.Errorf("10 back motifs, 12 cards: got %v", err)
	}
	if err := ValidateCount(10, fewBacks); err != nil {
		t.Errorf("10 back motifs, 10 cards: got %v", err)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  error
	}{
		{"12", 12, nil},
		{"  8 ", 8, nil},
		{"7", 7, nil}, // parses; ValidateCount rejects it
		{"", 0, ErrOddCount},
		{"twelve", 0, ErrOddCount},
		{"1.5", 0, ErrOddCount},
	}

	for _, tc := range tests {
		got, err := ParseCount(tc.in)
		if !errors.Is(err, tc.err) || got != tc.want {
			t.Errorf("ParseCount(%q) = %d, %v; expected %d, %v", tc.in, got, err, tc.want, tc.err)
		}
	}
}

func TestCardState(t *testing.T) {
	tests := []struct {
		card Card
		want CardState
	}{
		{Card{}, CardHidden},
		{Card{Flipped: true}, CardFlipped},
		{Card{Flipped: true, Matched: true}, CardMatched},
	}
	for _, tc := range tests {
		if got := tc.card.State(); got != tc.want {
			t.Errorf("%+v.State() = %v, expected %v", tc.card, got, tc.want)
		}
	}
}
