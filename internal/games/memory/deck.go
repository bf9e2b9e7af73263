package memory

import (
	"errors"
	"fmt"
	"math/rand"
	"path"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// Card count validation errors. ValidateCount wraps these with the
// configured limit, so match with errors.Is.
var (
	ErrOddCount     = errors.New("enter an even number of cards")
	ErrTooManyCards = errors.New("too many cards")
	ErrTooManyPairs = errors.New("not enough motifs for that many pairs")
)

// CardState is the face a card currently shows.
type CardState int

const (
	CardHidden CardState = iota
	CardFlipped
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardFlipped:
		return "flipped"
	case CardMatched:
		return "matched"
	default:
		return "hidden"
	}
}

// Card is one slot on the board. ID is the stable slot index.
type Card struct {
	ID         int
	BackMotif  int // Unique across the deck
	FrontMotif int // Shared with exactly one other card
	BackImage  string
	FrontImage string
	Matched    bool
	Flipped    bool
}

// State derives the card's face from its flags.
func (c Card) State() CardState {
	switch {
	case c.Matched:
		return CardMatched
	case c.Flipped:
		return CardFlipped
	default:
		return CardHidden
	}
}

// ValidateCount checks a requested card count against the deck limits.
func ValidateCount(count int, deck config.DeckConfig) error {
	if count < deck.MinCards || count%2 != 0 {
		return ErrOddCount
	}
	if count > deck.MaxCards {
		return fmt.Errorf("%w: at most %d cards", ErrTooManyCards, deck.MaxCards)
	}
	if count/2 > deck.FrontPool.Size() {
		return fmt.Errorf("%w: at most %d cards (%d pairs)", ErrTooManyPairs, deck.FrontPool.Size()*2, deck.FrontPool.Size())
	}
	if count > deck.BackPool.Size() {
		return fmt.Errorf("%w: at most %d cards", ErrTooManyPairs, deck.BackPool.Size())
	}
	return nil
}

// ParseCount reads the card count field. Anything that is not a plain
// integer is reported as ErrOddCount.
func ParseCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrOddCount
	}
	return n, nil
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle(rng *rand.Rand, s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// ImagePath returns the asset path for motif n.
func ImagePath(assets config.AssetsConfig, n int) string {
	return path.Join(assets.Dir, strconv.Itoa(n)+assets.Ext)
}

// BuildDeck deals count cards. count must already pass ValidateCount.
func BuildDeck(rng *rand.Rand, count int, deck config.DeckConfig, assets config.AssetsConfig) []Card {
	backs := poolValues(deck.BackPool)
	fronts := poolValues(deck.FrontPool)
	Shuffle(rng, backs)
	Shuffle(rng, fronts)

	motifs := fronts[:count/2]
	faces := make([]int, 0, count)
	faces = append(faces, motifs...)
	faces = append(faces, motifs...)
	Shuffle(rng, faces)

	cards := make([]Card, count)
	for i := range cards {
		cards[i] = Card{
			ID:         i,
			BackMotif:  backs[i],
			FrontMotif: faces[i],
			BackImage:  ImagePath(assets, backs[i]),
			FrontImage: ImagePath(assets, faces[i]),
		}
	}
	return cards
}

func poolValues(p config.Pool) []int {
	out := make([]int, 0, p.Size())
	for n := p.First; n <= p.Last; n++ {
		out = append(out, n)
	}
	return out
}
