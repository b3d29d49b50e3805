// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// BackgroundCheckRepository defines the secondary port for background-check persistence.
type BackgroundCheckRepository interface {
	// Create persists a new background-check record for an origin.
	Create(ctx context.Context, check *CheckRecord) error

	// GetByOrigin retrieves the check for an origin id.
	// Returns (nil, nil) when no record exists.
	GetByOrigin(ctx context.Context, originID string) (*CheckRecord, error)

	// UpdateSelection overwrites the selection set, last writer wins.
	// The write is conditional on the check still being unset; returns
	// false without mutating when it has been finalized.
	UpdateSelection(ctx context.Context, originID string, keys []string) (bool, error)

	// Finalize commits the terminal status. The status check and write are
	// one atomic statement; returns false when another writer finalized
	// first ("first durable writer wins").
	Finalize(ctx context.Context, originID, status string) (bool, error)
}

// CheckRecord represents a background check as stored in persistence.
type CheckRecord struct {
	OriginID        string
	OriginChannelID string
	Candidate       string
	RecommenderID   string
	Note            string // Empty string means null
	Status          string // unset, pass, fail
	SelectedKeys    []string
	CreatedAt       string
	UpdatedAt       string
}

// ObservationRepository defines the secondary port for observation-report persistence.
// Reports are write-once: there is no update or delete.
type ObservationRepository interface {
	// Insert files a report into a slot. The (origin, slot) uniqueness
	// constraint makes the first durable writer win: on conflict the
	// existing row is returned and the new content is discarded.
	Insert(ctx context.Context, report *ObservationRecord) (conflict *ObservationRecord, err error)

	// GetBySlot retrieves the report in a slot.
	// Returns (nil, nil) when the slot is empty.
	GetBySlot(ctx context.Context, originID string, slot int) (*ObservationRecord, error)

	// ListByOrigin retrieves all filed reports for an origin, ordered by slot.
	ListByOrigin(ctx context.Context, originID string) ([]*ObservationRecord, error)

	// CountByOrigin returns the number of filed reports for an origin.
	CountByOrigin(ctx context.Context, originID string) (int, error)
}

// ObservationRecord represents one filed observation report.
type ObservationRecord struct {
	OriginID  string
	Slot      int
	Date      string
	Notes     string
	Issues    string // Empty string means null
	AuthorID  string
	CreatedAt string
}

// ReplicaRepository defines the secondary port for the replica registry and
// the poll-mirror claim.
type ReplicaRepository interface {
	// Register adds a surface to an origin's replica set. Membership is
	// append-only; registering the same surface twice is a no-op.
	Register(ctx context.Context, ref *ReplicaRef) error

	// ListByOrigin retrieves every surface mirroring an origin.
	ListByOrigin(ctx context.Context, originID string) ([]*ReplicaRef, error)

	// ClaimPollMirror atomically claims the right to create the single
	// poll mirror for an origin. Returns false when already claimed.
	ClaimPollMirror(ctx context.Context, originID, actorID string) (bool, error)
}

// ReplicaRef identifies one rendered surface mirroring an origin record.
type ReplicaRef struct {
	OriginID         string
	SurfaceChannelID string
	SurfaceMessageID string
}
