// Package session maps viewer cookies to their own dashboard controller.
// A new session starts from default state, like a page reload.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/events"
)

type entry struct {
	mu         sync.Mutex
	controller *dashboard.Controller
	lastSeen   time.Time
}

// Store keeps controllers in memory until they go idle.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*entry
	ttl        time.Duration
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewStore creates a store. A non-positive ttl disables expiry.
func NewStore(ttl time.Duration, dispatcher events.Dispatcher) *Store {
	return &Store{
		sessions:   make(map[string]*entry),
		ttl:        ttl,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Do runs fn against the controller for id under that session's lock.
// An empty or unknown id starts a new session; the effective id is returned.
func (s *Store) Do(id string, fn func(*dashboard.Controller) error) (string, error) {
	id, e := s.acquire(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	err := fn(e.controller)
	s.touch(e)
	return id, err
}

func (s *Store) acquire(id string) (string, *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[id]; ok && id != "" {
		return id, e
	}
	id = uuid.NewString()
	e := &entry{
		controller: dashboard.NewController(id, s.dispatcher),
		lastSeen:   s.now(),
	}
	s.sessions[id] = e
	return id, e
}

func (s *Store) touch(e *entry) {
	s.mu.Lock()
	e.lastSeen = s.now()
	s.mu.Unlock()
}

// Sweep removes sessions idle for longer than the ttl and returns how many went.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
