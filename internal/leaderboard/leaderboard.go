// Package leaderboard keeps the fastest completion times.
//
// The whole collection is stored as one JSON array under a single key and
// is always read, sorted and written back as a unit; entries have no
// identity of their own.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Defaults used when the Board is built without options.
const (
	DefaultKey      = "memoryGameLeaderboard"
	DefaultCapacity = 50
)

// ErrEmptyName is returned by Save when the player name is blank.
var ErrEmptyName = errors.New("please enter a name")

// Storage is the key/value surface the board persists through.
// *storage.Store satisfies it.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Entry is one completed game.
type Entry struct {
	Name  string  `json:"name"`
	Time  float64 `json:"time"`  // Seconds, one decimal
	Cards int     `json:"cards"` // Card count of the game
	Date  string  `json:"date"`  // RFC 3339 timestamp
}

// Board reads and writes the leaderboard collection.
type Board struct {
	store    Storage
	key      string
	capacity int
	clock    core.Clock
}

// Option configures a Board.
type Option func(*Board)

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(b *Board) {
		if key != "" {
			b.key = key
		}
	}
}

// WithCapacity sets how many entries are retained.
func WithCapacity(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// WithClock sets the clock used to timestamp entries.
func WithClock(c core.Clock) Option {
	return func(b *Board) {
		if c != nil {
			b.clock = c
		}
	}
}

// New creates a board over store.
func New(store Storage, opts ...Option) *Board {
	b := &Board{
		store:    store,
		key:      DefaultKey,
		capacity: DefaultCapacity,
		clock:    core.SystemClock{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Capacity returns the maximum number of retained entries.
func (b *Board) Capacity() int {
	return b.capacity
}

// Save records a result and returns the stored entry with its 1-based
// rank. Rank is 0 when the time did not make the board.
func (b *Board) Save(name string, seconds float64, cards int) (Entry, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, 0, ErrEmptyName
	}

	entries, err := b.List()
	if err != nil {
		return Entry{}, 0, err
	}

	entry := Entry{
		Name:  name,
		Time:  seconds,
		Cards: cards,
		Date:  b.clock.Now().UTC().Format(time.RFC3339),
	}
	entries = append(entries, entry)
	newIdx := len(entries) - 1

	// Stable keeps earlier entries ahead on equal times, so the new entry
	// is ranked after existing ties.
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return entries[order[i]].Time < entries[order[j]].Time
	})

	sorted := make([]Entry, 0, len(entries))
	rank := 0
	for pos, idx := range order {
		if pos >= b.capacity {
			break
		}
		if idx == newIdx {
			rank = pos + 1
		}
		sorted = append(sorted, entries[idx])
	}

	if err := b.write(sorted); err != nil {
		return Entry{}, 0, err
	}
	return entry, rank, nil
}

// List returns the stored collection in rank order. A missing or
// unreadable document is an empty board.
func (b *Board) List() ([]Entry, error) {
	raw, ok, err := b.store.GetItem(b.key)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot load: %w", err)
	}
	if !ok {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []Entry{}, nil
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Clear deletes the whole collection.
func (b *Board) Clear() error {
	if err := b.store.RemoveItem(b.key); err != nil {
		return fmt.Errorf("leaderboard: cannot clear: %w", err)
	}
	return nil
}

func (b *Board) write(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	if err := b.store.SetItem(b.key, string(data)); err != nil {
		return fmt.Errorf("leaderboard: cannot save: %w", err)
	}
	return nil
}

// Medal returns the marker shown next to the top three ranks.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

// FormatRank renders a rank with its medal, e.g. "🥇 1" or "12".
func FormatRank(rank int) string {
	if m := Medal(rank); m != "" {
		return fmt.Sprintf("%s %d", m, rank)
	}
	return fmt.Sprintf("%d", rank)
}

// ParseDate returns the entry timestamp, or the zero time if it is not
// a valid RFC 3339 value.
func (e Entry) ParseDate() time.Time {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
