// Package memstash is the in-memory implementation of the session stash.
// Entries are process-lifetime only and do not survive a restart; when they
// are gone the flow simply restarts, so losing them is accepted behavior.
package memstash

import (
	"sync"
	"time"

	"github.com/example/vouch/internal/ports/secondary"
)

// Stash implements secondary.SessionStash with a mutex-guarded map and one
// deferred cleanup timer per entry. No active sweep is needed: expiry is
// enacted by the timer armed at Put/Refresh time.
type Stash struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	payload secondary.DraftPayload
	ttl     time.Duration
	timer   *time.Timer
}

// New creates an empty stash.
func New() *Stash {
	return &Stash{entries: make(map[string]*entry)}
}

// Put stores a payload under a token and arms its expiry timer.
// Re-putting an existing token replaces the payload and re-arms the timer.
func (s *Stash) Put(token string, payload secondary.DraftPayload, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[token]; ok {
		old.timer.Stop()
	}

	e := &entry{payload: payload, ttl: ttl}
	e.timer = time.AfterFunc(ttl, func() { s.expire(token, e) })
	s.entries[token] = e
}

// Refresh resets the timer to a full TTL window without changing the
// payload. Returns false when the token is missing or already expired.
func (s *Stash) Refresh(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return false
	}

	// Stop returns false if the timer already fired; the expiry callback
	// is then racing us for the lock and will delete the entry, so the
	// token is treated as gone.
	if !e.timer.Stop() {
		delete(s.entries, token)
		return false
	}

	e.timer.Reset(e.ttl)
	return true
}

// Consume atomically returns and deletes the entry. A second consume on
// the same token reports ok=false.
func (s *Stash) Consume(token string) (secondary.DraftPayload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return secondary.DraftPayload{}, false
	}

	e.timer.Stop()
	delete(s.entries, token)
	return e.payload, true
}

// expire is the deferred cleanup scheduled at Put/Refresh time. The entry
// pointer guards against a stale timer deleting a re-put token.
func (s *Stash) expire(token string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.entries[token]; ok && current == e {
		delete(s.entries, token)
	}
}

// Ensure Stash implements the interface
var _ secondary.SessionStash = (*Stash)(nil)
