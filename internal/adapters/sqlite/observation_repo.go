package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/vouch/internal/ports/secondary"
)

// ObservationRepository implements secondary.ObservationRepository with SQLite.
// Reports are write-once - no Update or Delete operations.
type ObservationRepository struct {
	db *sql.DB
}

// NewObservationRepository creates a new SQLite observation repository.
func NewObservationRepository(db *sql.DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

// Insert files a report into a slot. The (origin_id, slot_index) primary
// key is the uniqueness constraint that makes the first durable writer win:
// on conflict the existing row is returned and the new content discarded.
func (r *ObservationRepository) Insert(ctx context.Context, report *secondary.ObservationRecord) (*secondary.ObservationRecord, error) {
	var issues sql.NullString
	if report.Issues != "" {
		issues = sql.NullString{String: report.Issues, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO observations (origin_id, slot_index, observed_on, notes, issues, author_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.OriginID, report.Slot, report.Date, report.Notes, issues, report.AuthorID,
	)
	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
			existing, getErr := r.GetBySlot(ctx, report.OriginID, report.Slot)
			if getErr != nil {
				return nil, fmt.Errorf("failed to read winning report after conflict: %w", getErr)
			}
			if existing != nil {
				return existing, nil
			}
			// Constraint failure without a visible row means a foreign key
			// violation - the origin record does not exist.
		}
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	return nil, nil
}

// GetBySlot retrieves the report in a slot. Returns (nil, nil) when empty.
func (r *ObservationRepository) GetBySlot(ctx context.Context, originID string, slot int) (*secondary.ObservationRecord, error) {
	var (
		issues    sql.NullString
		createdAt time.Time
	)

	record := &secondary.ObservationRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT origin_id, slot_index, observed_on, notes, issues, author_id, created_at
		 FROM observations WHERE origin_id = ? AND slot_index = ?`,
		originID, slot,
	).Scan(&record.OriginID, &record.Slot, &record.Date, &record.Notes, &issues, &record.AuthorID, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	record.Issues = issues.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListByOrigin retrieves all filed reports for an origin, ordered by slot.
func (r *ObservationRepository) ListByOrigin(ctx context.Context, originID string) ([]*secondary.ObservationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT origin_id, slot_index, observed_on, notes, issues, author_id, created_at
		 FROM observations WHERE origin_id = ? ORDER BY slot_index`,
		originID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*secondary.ObservationRecord
	for rows.Next() {
		var (
			issues    sql.NullString
			createdAt time.Time
		)

		record := &secondary.ObservationRecord{}
		err := rows.Scan(&record.OriginID, &record.Slot, &record.Date, &record.Notes, &issues, &record.AuthorID, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		record.Issues = issues.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		reports = append(reports, record)
	}

	return reports, nil
}

// CountByOrigin returns the number of filed reports for an origin.
func (r *ObservationRepository) CountByOrigin(ctx context.Context, originID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM observations WHERE origin_id = ?", originID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// Ensure ObservationRepository implements the interface
var _ secondary.ObservationRepository = (*ObservationRepository)(nil)
