package memory

// Phase is the lifecycle of a Session.
type Phase int

const (
	PhaseActive    Phase = iota // Accepting flips
	PhaseComplete               // Every card matched
	PhaseDiscarded              // Abandoned by a restart
)

func (p Phase) String() string {
	switch p {
	case PhaseComplete:
		return "complete"
	case PhaseDiscarded:
		return "discarded"
	default:
		return "active"
	}
}

// FlipResult describes what a flip did.
type FlipResult int

const (
	FlipRejected  FlipResult = iota // Ignored; no state changed
	FlipOpened                      // First card of a pair is face up
	FlipPairReady                   // Second card is face up; the session is locked until Resolve
)

// Resolution is the outcome of comparing the two open cards.
type Resolution struct {
	A, B    int // Card IDs in the order they were flipped
	Matched bool
	Won     bool // This resolution matched the final pair
}

// Session is one dealt board and its match state.
//
// Face-up unmatched cards are tracked in a two-slot buffer rather than
// found by scanning the deck, and the lock is set exactly when the
// second slot fills. A third flip is therefore always rejected until
// Resolve empties the buffer.
type Session struct {
	cards   []Card
	pending [2]int
	open    int
	locked  bool
	pairs   int // Matched pairs
	phase   Phase
}

// NewSession starts an active session over cards. The session owns the
// slice.
func NewSession(cards []Card) *Session {
	return &Session{cards: cards}
}

// Len returns the number of cards.
func (s *Session) Len() int { return len(s.cards) }

// Card returns a copy of card id.
func (s *Session) Card(id int) Card { return s.cards[id] }

// Cards returns a copy of the deck.
func (s *Session) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Locked reports whether a comparison is pending.
func (s *Session) Locked() bool { return s.locked }

// Pending returns the IDs of face-up unmatched cards in flip order.
func (s *Session) Pending() []int {
	return append([]int(nil), s.pending[:s.open]...)
}

// MatchedPairs returns how many pairs have been found.
func (s *Session) MatchedPairs() int { return s.pairs }

// Pairs returns the number of pairs in the deck.
func (s *Session) Pairs() int { return len(s.cards) / 2 }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Flip turns card id face up if the session allows it.
func (s *Session) Flip(id int) FlipResult {
	if s.phase != PhaseActive || s.locked {
		return FlipRejected
	}
	if id < 0 || id >= len(s.cards) {
		return FlipRejected
	}
	c := &s.cards[id]
	if c.Matched || c.Flipped {
		return FlipRejected
	}

	c.Flipped = true
	s.pending[s.open] = id
	s.open++

	if s.open < len(s.pending) {
		return FlipOpened
	}
	s.locked = true
	return FlipPairReady
}

// Resolve compares the two open cards and releases the lock. It returns
// false when there is nothing to resolve.
func (s *Session) Resolve() (Resolution, bool) {
	if s.phase != PhaseActive || !s.locked {
		return Resolution{}, false
	}

	a, b := &s.cards[s.pending[0]], &s.cards[s.pending[1]]
	res := Resolution{A: a.ID, B: b.ID}

	if a.FrontImage == b.FrontImage {
		a.Matched, b.Matched = true, true
		s.pairs++
		res.Matched = true
	} else {
		a.Flipped, b.Flipped = false, false
	}

	s.open = 0
	s.locked = false

	if s.pairs == s.Pairs() {
		s.phase = PhaseComplete
		res.Won = true
	}
	return res, true
}

// Discard abandons the session. Later flips and resolutions are no-ops.
func (s *Session) Discard() {
	if s.phase == PhaseActive {
		s.phase = PhaseDiscarded
	}
}
