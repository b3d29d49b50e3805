package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType, entityID string) error

	// LogUpdate logs an update operation for an entity.
	// detail describes what changed.
	LogUpdate(ctx context.Context, entityType, entityID, detail string) error

	// LogSkip logs a best-effort step that was skipped, such as a replica
	// surface that could not be reached during broadcast.
	LogSkip(ctx context.Context, entityType, entityID, reason string) error
}
