// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Holds one game.State per session; sessions are lost on restart.
//
// Characteristics:
//   - Sessions are stored by value; callers always receive copies.
//   - Update is an atomic read-modify-write: the callback runs under the
//     write lock and its result replaces the stored session wholesale.
//     A callback error leaves the stored session untouched.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonkhler/lexigon/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one player's game.
type Session struct {
	ID        string
	PuzzleID  string    // history row of the current puzzle
	Wordlist  string    // name of the word list in play
	Owner     string    // user or anonymous identifier
	Daily     string    // date key for daily puzzles, empty otherwise
	StartedAt time.Time // start of the current puzzle
	State     game.State
}

// Store defines the persistence interface for game sessions.
type Store interface {
	// Create stores a new session under a fresh ID and returns it.
	Create(ctx context.Context, s Session) (Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (Session, error)

	// Update applies fn to the stored session and saves the result.
	Update(ctx context.Context, id string, fn func(*Session) error) (Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex       // guards sessions
	sessions map[string]Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]Session)}
}

// Create assigns an ID and stores s.
func (m *memory) Create(ctx context.Context, s Session) (Session, error) {
	s.ID = uuid.NewString()
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return Session{}, ErrNotFound
}

// Update runs fn on a copy of the session and stores it if fn succeeds.
// On error the previous session is returned alongside it.
func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	next := cur
	if err := fn(&next); err != nil {
		return cur, err
	}
	next.ID = cur.ID
	m.sessions[id] = next
	return next, nil
}
