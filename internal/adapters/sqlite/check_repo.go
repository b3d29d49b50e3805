// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/vouch/internal/ports/secondary"
)

// BackgroundCheckRepository implements secondary.BackgroundCheckRepository with SQLite.
type BackgroundCheckRepository struct {
	db *sql.DB
}

// NewBackgroundCheckRepository creates a new SQLite background-check repository.
func NewBackgroundCheckRepository(db *sql.DB) *BackgroundCheckRepository {
	return &BackgroundCheckRepository{db: db}
}

// Create persists a new background-check record for an origin.
func (r *BackgroundCheckRepository) Create(ctx context.Context, check *secondary.CheckRecord) error {
	var note sql.NullString
	if check.Note != "" {
		note = sql.NullString{String: check.Note, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO background_checks (origin_id, origin_channel_id, candidate, recommender_id, recommend_note, status, selected_keys)
		 VALUES (?, ?, ?, ?, ?, 'unset', ?)`,
		check.OriginID, check.OriginChannelID, check.Candidate, check.RecommenderID, note, joinKeys(check.SelectedKeys),
	)
	if err != nil {
		return fmt.Errorf("failed to create background check: %w", err)
	}

	return nil
}

// GetByOrigin retrieves the check for an origin id. Returns (nil, nil) when
// no record exists.
func (r *BackgroundCheckRepository) GetByOrigin(ctx context.Context, originID string) (*secondary.CheckRecord, error) {
	var (
		note      sql.NullString
		keys      string
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.CheckRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT origin_id, origin_channel_id, candidate, recommender_id, recommend_note, status, selected_keys, created_at, updated_at
		 FROM background_checks WHERE origin_id = ?`,
		originID,
	).Scan(&record.OriginID, &record.OriginChannelID, &record.Candidate, &record.RecommenderID, &note, &record.Status, &keys, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get background check: %w", err)
	}

	record.Note = note.String
	record.SelectedKeys = splitKeys(keys)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// UpdateSelection overwrites the selection set, conditional on the check
// still being unset. Returns false without mutating when finalized.
func (r *BackgroundCheckRepository) UpdateSelection(ctx context.Context, originID string, keys []string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE background_checks SET selected_keys = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE origin_id = ? AND status = 'unset'`,
		joinKeys(keys), originID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update selection: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Finalize commits the terminal status. The WHERE clause re-checks the
// unset status in the same statement as the write, so under a concurrent
// finalize race exactly one caller sees true.
func (r *BackgroundCheckRepository) Finalize(ctx context.Context, originID, status string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE background_checks SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE origin_id = ? AND status = 'unset'`,
		status, originID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to finalize background check: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// joinKeys flattens a selection set into its stored form.
func joinKeys(keys []string) string {
	return strings.Join(keys, ",")
}

// splitKeys parses the stored form back into a selection set.
func splitKeys(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Ensure BackgroundCheckRepository implements the interface
var _ secondary.BackgroundCheckRepository = (*BackgroundCheckRepository)(nil)
