package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/google/uuid"
)

// Session is one open table instance: a list page plus its view state.
// Sessions are independent of one another.
type Session struct {
	ID       uuid.UUID
	TableKey string

	mu       sync.Mutex
	state    table.State
	lastSeen time.Time
}

// State returns the current state. The value is a snapshot: later
// transitions replace it and never modify what was returned.
func (s *Session) State() table.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// apply replaces the state with fn(current) as one step.
func (s *Session) apply(fn func(table.State) table.State, now time.Time) table.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	s.lastSeen = now
	return s.state
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionStore holds open sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewSessionStore creates a store that expires sessions idle for ttl and
// holds at most max of them.
func NewSessionStore(ttl time.Duration, max int) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		max:      max,
		now:      time.Now,
	}
}

// Create opens a session for tableKey starting at state.
func (st *SessionStore) Create(tableKey string, state table.State) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.max > 0 && len(st.sessions) >= st.max {
		return nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, st.max)
	}

	s := &Session{
		ID:       uuid.New(),
		TableKey: tableKey,
		state:    state,
		lastSeen: st.now(),
	}
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns a live session and marks it as used.
func (st *SessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	now := st.now()
	if st.ttl > 0 && s.idleSince(now) > st.ttl {
		st.Delete(id)
		return nil, fmt.Errorf("%w: %s expired", ErrSessionNotFound, id)
	}
	s.touch(now)
	return s, nil
}

// Apply runs a transition on a session and returns the resulting state.
func (st *SessionStore) Apply(id uuid.UUID, fn func(table.State) table.State) (*Session, table.State, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, table.State{}, err
	}
	return s, s.apply(fn, st.now()), nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Sweep removes every session idle for longer than the TTL and returns how
// many were removed.
func (st *SessionStore) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of open sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
