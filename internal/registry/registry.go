// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions so the platform
// and CLI can discover them without importing each game by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Game is the interface every memory variant implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// maps keys and mouse events to an InputFrame, drives Step on each tick
// and renders the Screen.
type Game interface {
	// ID returns a unique identifier (e.g., "memory", "memory_ranked").
	// Used for CLI flags and log fields.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a fresh session. Called at start and on restart.
	// The RuntimeConfig carries screen size, RNG seed, card count and clock.
	Reset(cfg core.RuntimeConfig)

	// Step processes one frame of input and any delayed work that has
	// come due on the clock.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Ranked is implemented by games whose completion times go to the
// leaderboard.
type Ranked interface {
	Ranked() bool
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Ranked bool
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Ranked: IsRanked(g)}
}

// IsRanked reports whether g records to the leaderboard.
func IsRanked(g Game) bool {
	r, ok := g.(Ranked)
	return ok && r.Ranked()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a game; tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(infos, id)
}
