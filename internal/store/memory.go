// internal/store/memory.go
//
// In-memory implementation of the session Store interface, holding live
// serve-mode games keyed by ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; finished games are recorded
//     separately through internal/results when a database is configured.
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("store: game not found")

// Store defines the session-store interface for live games.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game does not exist.
	Get(ctx context.Context, id string) (*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}
