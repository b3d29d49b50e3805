package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/vouch/internal/ctxutil"
	"github.com/example/vouch/internal/ports/secondary"
)

// WorkflowLogWriter implements secondary.LogWriter against the
// workflow_logs table. The actor is taken from context.
type WorkflowLogWriter struct {
	db *sql.DB
}

// NewWorkflowLogWriter creates a new SQLite audit log writer.
func NewWorkflowLogWriter(db *sql.DB) *WorkflowLogWriter {
	return &WorkflowLogWriter{db: db}
}

// LogCreate logs a create operation for an entity.
func (w *WorkflowLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.writeLog(ctx, entityType, entityID, "create", "")
}

// LogUpdate logs an update operation for an entity.
func (w *WorkflowLogWriter) LogUpdate(ctx context.Context, entityType, entityID, detail string) error {
	return w.writeLog(ctx, entityType, entityID, "update", detail)
}

// LogSkip logs a best-effort step that was skipped.
func (w *WorkflowLogWriter) LogSkip(ctx context.Context, entityType, entityID, reason string) error {
	return w.writeLog(ctx, entityType, entityID, "skip", reason)
}

func (w *WorkflowLogWriter) writeLog(ctx context.Context, entityType, entityID, action, detail string) error {
	actorID := ctxutil.ActorFromContext(ctx)

	var detailVal sql.NullString
	if detail != "" {
		detailVal = sql.NullString{String: detail, Valid: true}
	}

	_, err := w.db.ExecContext(ctx,
		`INSERT INTO workflow_logs (actor_id, entity_type, entity_id, action, detail)
		 VALUES (?, ?, ?, ?, ?)`,
		actorID, entityType, entityID, action, detailVal,
	)
	if err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	return nil
}

// Ensure WorkflowLogWriter implements the interface
var _ secondary.LogWriter = (*WorkflowLogWriter)(nil)
