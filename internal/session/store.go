// Package session tracks one cart per open order-entry screen. A session
// serializes access to its cart (one operator per screen) and carries the
// single-flight guard for PIN verification and submission.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/washbay-pos/api/internal/cart"
)

// ErrNotFound is returned for unknown or abandoned sessions.
var ErrNotFound = errors.New("session not found")

// Session is one open order-entry screen.
type Session struct {
	ID        uuid.UUID
	Cart      *cart.Cart
	Prompt    *cart.PromptGuard
	CreatedAt time.Time

	mu       sync.Mutex
	inFlight bool
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Cart)
}

// BeginSubmit claims the single in-flight slot for a PIN/submit round-trip.
// It fails while another round-trip is outstanding, so a second click cannot
// issue a duplicate verification or a duplicate order.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// EndSubmit releases the in-flight slot, on success and failure alike.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// Store holds the active sessions of this terminal.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Create opens a new session with an empty cart.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.New(),
		Cart:      cart.New(),
		Prompt:    cart.NewPromptGuard(nil),
		CreatedAt: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete abandons a session. The cart is discarded.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports how many sessions are open.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
