package secondary

import "time"

// DraftPayload is the recommendation draft handed from an initiating action
// to its deferred continuation by the same actor.
type DraftPayload struct {
	Candidate     string
	Note          string
	RecommenderID string
}

// SessionStash defines the secondary port for the short-lived draft holding
// area. Entries live for one TTL window and are consumed exactly once.
// The stash is process-lifetime only: entries do not survive a restart,
// which is an accepted limitation - the flow simply restarts.
type SessionStash interface {
	// Put stores a payload under a token and arms its expiry timer.
	Put(token string, payload DraftPayload, ttl time.Duration)

	// Refresh resets the timer to a full TTL window without changing the
	// payload. Returns false when the token is missing or expired.
	Refresh(token string) bool

	// Consume atomically returns and deletes the entry. A second consume
	// on the same token reports ok=false.
	Consume(token string) (payload DraftPayload, ok bool)
}
