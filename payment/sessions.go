package payment

import (
	"sync"
	"time"
)

type sessionEntry struct {
	guard   *Guard
	lastUse time.Time
}

// SessionGuards hands out one Guard per checkout session, so concurrent
// sessions in the same process never share a latch. Guards idle past the
// safety timeout are swept on access; by then any held latch has been
// force-cleared and any release timer has fired.
type SessionGuards struct {
	store         OrderStore
	releaseDelay  time.Duration
	safetyTimeout time.Duration

	mu     sync.Mutex
	guards map[string]*sessionEntry
}

// NewSessionGuards creates a registry backed by the given store, using the
// default guard timings.
func NewSessionGuards(store OrderStore) *SessionGuards {
	return NewSessionGuardsWithTimings(store, DefaultReleaseDelay, DefaultSafetyTimeout)
}

// NewSessionGuardsWithTimings creates a registry with explicit guard
// timings. Tests use short values here.
func NewSessionGuardsWithTimings(store OrderStore, releaseDelay, safetyTimeout time.Duration) *SessionGuards {
	return &SessionGuards{
		store:         store,
		releaseDelay:  releaseDelay,
		safetyTimeout: safetyTimeout,
		guards:        map[string]*sessionEntry{},
	}
}

// Get returns the guard for a session, creating it on first use and
// sweeping expired sessions so the registry does not grow without bound.
func (s *SessionGuards) Get(sessionID string) *Guard {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweep(now)

	entry, ok := s.guards[sessionID]
	if !ok {
		entry = &sessionEntry{
			guard: NewGuardWithTimings(s.store, s.releaseDelay, s.safetyTimeout),
		}
		s.guards[sessionID] = entry
	}
	entry.lastUse = now
	return entry.guard
}

// Drop removes a session's guard once the session is finished.
func (s *SessionGuards) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guards, sessionID)
}

// sweep evicts guards idle longer than the safety timeout. A guard whose
// latch is somehow still held is kept for the next pass.
func (s *SessionGuards) sweep(now time.Time) {
	for id, entry := range s.guards {
		if now.Sub(entry.lastUse) > s.safetyTimeout && !entry.guard.Held() {
			delete(s.guards, id)
		}
	}
}
