package memory

import "time"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Cursor  int
	Cards   []Card
	Pending []int
	Locked  bool
	Pairs   int
	Status  string
	Summary bool
	Elapsed time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.session.Phase().String(),
		Cursor:  g.cursor,
		Cards:   g.session.Cards(),
		Pending: g.session.Pending(),
		Locked:  g.session.Locked(),
		Pairs:   g.session.MatchedPairs(),
		Status:  g.status,
		Summary: g.summary,
		Elapsed: g.watch.Elapsed(),
	}
}
