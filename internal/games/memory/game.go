// Package memory implements the card matching game: a shuffled deck of
// paired motifs laid out face down, flipped two at a time against a
// running stopwatch.
package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Registered game IDs.
const (
	IDClassic = "memory"
	IDRanked  = "memory_ranked"
)

// Status line messages.
const (
	StatusStart    = "Flip the cards to find the pairs."
	StatusMatch    = "Match!"
	StatusMismatch = "No match - try again."
	StatusWin      = "Congratulations! All pairs found."
)

// Screen rows above the board.
const hudHeight = 3

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is one variant of the memory game.
type Game struct {
	id      string
	title   string
	variant string

	cfg   config.MemoryConfig
	vcfg  config.VariantConfig
	clock core.Clock
	rng   *rand.Rand
	tick  uint64

	session *Session
	watch   *Stopwatch

	// Layout
	grid     Grid
	cardW    int
	cardH    int
	rects    []core.Rect
	screenW  int
	screenH  int
	tooSmall bool

	cursor int
	status string

	// Delayed work, due against the clock
	resolveAt     time.Time
	resolveDue    bool
	revealAt      time.Time
	revealDue     bool
	summary       bool
	resolutions   []Resolution
	configWarning error
}

// VariantFor returns the config variant name used by game id.
func VariantFor(id string) string {
	if id == IDRanked {
		return config.VariantRanked
	}
	return config.VariantClassic
}

// New creates the classic variant.
func New() *Game {
	return &Game{id: IDClassic, title: "Memory", variant: VariantFor(IDClassic)}
}

// NewRanked creates the variant that records times to the leaderboard.
func NewRanked() *Game {
	return &Game{id: IDRanked, title: "Memory (Ranked)", variant: VariantFor(IDRanked)}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDRanked, func() registry.Game {
		return NewRanked()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Ranked reports whether completion times go to the leaderboard.
func (g *Game) Ranked() bool {
	if g.vcfg.MaxRow == 0 {
		return g.variant == config.VariantRanked
	}
	return g.vcfg.Leaderboard
}

// ConfigError returns the load error of the last Reset, if the game fell
// back to the built-in defaults.
func (g *Game) ConfigError() error { return g.configWarning }

// Reset deals a new session, discarding the current one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMemory(configPath)
	if err != nil {
		mc = config.DefaultMemoryConfig()
	}
	g.configWarning = err
	g.resetWith(mc, cfg)
}

func (g *Game) resetWith(mc config.MemoryConfig, cfg core.RuntimeConfig) {
	if g.session != nil {
		g.session.Discard()
	}

	g.cfg = mc
	g.vcfg = mc.Variant(g.variant)
	g.clock = cfg.ClockOrSystem()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	count := cfg.CardCount
	if ValidateCount(count, mc.Deck) != nil {
		count = mc.Deck.DefaultCards
	}

	g.session = NewSession(BuildDeck(g.rng, count, mc.Deck, mc.Assets))
	g.grid = NewGrid(count, g.vcfg.MaxRow)
	g.cursor = 0
	g.status = StatusStart
	g.resolveDue = false
	g.revealDue = false
	g.summary = false
	g.resolutions = nil

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.watch = NewStopwatch(g.clock)
	g.watch.Start()
}

// Resize recomputes card sizes and positions for a new screen without
// touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	s := g.vcfg.Sizing
	g.cardW, g.cardH = g.grid.CardSize(w, h, s)
	boardW, boardH := g.grid.Extent(g.cardW, g.cardH, s.Gap)

	// HUD above, status line and a blank row below
	g.tooSmall = boardW > w || hudHeight+boardH+2 > h

	origin := core.Point{X: max(0, (w-boardW)/2), Y: hudHeight}
	g.rects = g.grid.Rects(origin, g.cardW, g.cardH, s.Gap)
}

// Step processes one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.clock.Now()

	if g.resolveDue && !now.Before(g.resolveAt) {
		g.resolve(now)
	}
	if g.revealDue && !now.Before(g.revealAt) {
		g.revealDue = false
		g.summary = true
	}

	if g.tooSmall || g.session.Phase() != PhaseActive {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	for _, p := range in.Clicks {
		if id := g.CardAt(p); id >= 0 {
			g.cursor = id
			g.flip(id, now)
		}
	}

	if in.Has(core.ActionFlip) {
		g.flip(g.cursor, now)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) flip(id int, now time.Time) {
	if g.session.Flip(id) == FlipPairReady {
		g.resolveAt = now.Add(g.cfg.Timing.ResolveDelay)
		g.resolveDue = true
	}
}

func (g *Game) resolve(now time.Time) {
	g.resolveDue = false
	res, ok := g.session.Resolve()
	if !ok {
		return
	}
	g.resolutions = append(g.resolutions, res)

	if res.Matched {
		g.status = StatusMatch
	} else {
		g.status = StatusMismatch
	}

	if res.Won {
		g.watch.Stop()
		g.status = StatusWin
		g.revealAt = now.Add(g.cfg.Timing.RevealDelay)
		g.revealDue = true
	}
}

// moveCursor moves by one slot. Moving down into the ragged end of the
// last row lands on the last card.
func (g *Game) moveCursor(dc, dr int) {
	col, row := g.grid.Position(g.cursor)
	col, row = col+dc, row+dr
	if col < 0 || col >= g.grid.Cols || row < 0 || row >= g.grid.Rows {
		return
	}
	if i := g.grid.Index(col, row); i >= 0 {
		g.cursor = i
	} else if dr > 0 {
		g.cursor = g.grid.Count - 1
	}
}

// CardAt returns the card under screen cell p, or -1.
func (g *Game) CardAt(p core.Point) int {
	if g.tooSmall {
		return -1
	}
	for i, r := range g.rects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// TakeResolutions returns the comparisons made since the last call.
func (g *Game) TakeResolutions() []Resolution {
	out := g.resolutions
	g.resolutions = nil
	return out
}

// CardCount returns the number of dealt cards.
func (g *Game) CardCount() int { return g.session.Len() }

// Session exposes the match state.
func (g *Game) Session() *Session { return g.session }

// Grid returns the current layout.
func (g *Game) Grid() Grid { return g.grid }

// CardRect returns the screen rectangle of card i.
func (g *Game) CardRect(i int) core.Rect { return g.rects[i] }

// Status returns the status line text.
func (g *Game) Status() string { return g.status }

// Elapsed returns the stopwatch reading.
func (g *Game) Elapsed() time.Duration { return g.watch.Elapsed() }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.MatchedPairs(),
		GameOver: g.session.Phase() == PhaseComplete,
		Summary:  g.summary,
		Paused:   g.tooSmall,
		Elapsed:  g.watch.Elapsed(),
	}
}
