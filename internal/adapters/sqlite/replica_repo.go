package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/example/vouch/internal/ports/secondary"
)

// ReplicaRepository implements secondary.ReplicaRepository with SQLite.
type ReplicaRepository struct {
	db *sql.DB
}

// NewReplicaRepository creates a new SQLite replica repository.
func NewReplicaRepository(db *sql.DB) *ReplicaRepository {
	return &ReplicaRepository{db: db}
}

// Register adds a surface to an origin's replica set. Membership is
// append-only; the INSERT OR IGNORE makes re-registration a no-op.
func (r *ReplicaRepository) Register(ctx context.Context, ref *secondary.ReplicaRef) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO replica_refs (origin_id, surface_channel_id, surface_message_id)
		 VALUES (?, ?, ?)`,
		ref.OriginID, ref.SurfaceChannelID, ref.SurfaceMessageID,
	)
	if err != nil {
		return fmt.Errorf("failed to register replica: %w", err)
	}

	return nil
}

// ListByOrigin retrieves every surface mirroring an origin.
func (r *ReplicaRepository) ListByOrigin(ctx context.Context, originID string) ([]*secondary.ReplicaRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT origin_id, surface_channel_id, surface_message_id
		 FROM replica_refs WHERE origin_id = ? ORDER BY created_at`,
		originID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list replicas: %w", err)
	}
	defer rows.Close()

	var refs []*secondary.ReplicaRef
	for rows.Next() {
		ref := &secondary.ReplicaRef{}
		if err := rows.Scan(&ref.OriginID, &ref.SurfaceChannelID, &ref.SurfaceMessageID); err != nil {
			return nil, fmt.Errorf("failed to scan replica: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// ClaimPollMirror atomically claims the right to create the single poll
// mirror for an origin. Racing completions contend on the primary key;
// the loser's insert fails and false is returned.
func (r *ReplicaRepository) ClaimPollMirror(ctx context.Context, originID, actorID string) (bool, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO poll_mirrors (origin_id, claimed_by) VALUES (?, ?)",
		originID, actorID,
	)
	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim poll mirror: %w", err)
	}

	return true, nil
}

// Ensure ReplicaRepository implements the interface
var _ secondary.ReplicaRepository = (*ReplicaRepository)(nil)
