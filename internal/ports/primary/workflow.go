package primary

import (
	"context"

	"github.com/example/vouch/internal/core/action"
)

// WorkflowService defines the primary port for dispatching incoming
// workflow actions. It enforces stage ordering, delegates to the owning
// engine, replicates the resulting view and reduces every outcome to one
// user-visible message.
type WorkflowService interface {
	// Dispatch handles one typed action. Domain errors are already
	// reduced into the outcome; a returned error is an unexpected fault
	// that was logged and surfaced generically.
	Dispatch(ctx context.Context, act action.Action) (*Outcome, error)
}

// BroadcastService defines the primary port for replica synchronization.
type BroadcastService interface {
	// Broadcast projects the record's current state and applies the same
	// edit to every registered replica surface, best effort: unreachable
	// surfaces are logged and skipped, never retried.
	Broadcast(ctx context.Context, originID string) error
}

// Outcome is the single user-visible result of a dispatched action.
type Outcome struct {
	OK      bool
	Message string
	Token   string  // Stash token, set by recommend.start
	Record  *Record // Current record state, when one was resolved
}
