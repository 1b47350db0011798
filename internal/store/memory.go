// internal/store/memory.go
//
// In-memory home for live game sessions served over HTTP.
//
// Characteristics:
//   - Stores *game.Session values keyed by session ID.
//   - The map is guarded by an RWMutex; each session additionally has its
//     own mutex so operations on one game run one at a time, while
//     different games proceed in parallel.
//   - State is lost when the process restarts.
//   - Idle sessions can be swept with Sweep.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle-engine/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the holding interface for game sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Update runs fn with exclusive access to the session.
	// Returns ErrNotFound if the ID is unknown, otherwise fn's error.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions not touched for longer than idle and reports
	// how many were removed.
	Sweep(idle time.Duration) int

	// Len returns the number of live sessions.
	Len() int
}

type entry struct {
	mu      sync.Mutex // serializes operations on s
	s       *game.Session
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards sessions
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{sessions: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{s: s, touched: m.now()}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.touched = m.now()
	return fn(e.s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		stale := e.touched.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
