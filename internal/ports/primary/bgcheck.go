package primary

import (
	"context"

	"github.com/example/vouch/internal/core/bgcheck"
)

// BackgroundCheckService defines the primary port for the checklist stage.
type BackgroundCheckService interface {
	// Start opens the checklist for an origin.
	// Returns ErrAlreadyFinalized when the check is terminal.
	Start(ctx context.Context, originID string) (*Record, error)

	// UpdateSelection overwrites the stored selection set. Repeated calls
	// are last-writer-wins: selection is a draft, not a commitment.
	UpdateSelection(ctx context.Context, originID string, keys []string) (*Record, error)

	// Finalize commits the terminal verdict. The loser of a concurrent
	// finalize race receives ErrAlreadyFinalized and no state change.
	Finalize(ctx context.Context, originID string, verdict bgcheck.Verdict) (*Record, error)

	// Get retrieves the current record without mutating it.
	Get(ctx context.Context, originID string) (*Record, error)
}
