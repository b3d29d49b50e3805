package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/vouch/internal/core/bgcheck"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// BackgroundCheckServiceImpl implements the BackgroundCheckService interface.
type BackgroundCheckServiceImpl struct {
	checkRepo       secondary.BackgroundCheckRepository
	observationRepo secondary.ObservationRepository
	logWriter       secondary.LogWriter
	slotCount       int
}

// NewBackgroundCheckService creates a new BackgroundCheckService with injected dependencies.
// logWriter is optional - if nil, no audit logging is performed.
func NewBackgroundCheckService(checkRepo secondary.BackgroundCheckRepository, observationRepo secondary.ObservationRepository, logWriter secondary.LogWriter, slotCount int) *BackgroundCheckServiceImpl {
	return &BackgroundCheckServiceImpl{
		checkRepo:       checkRepo,
		observationRepo: observationRepo,
		logWriter:       logWriter,
		slotCount:       slotCount,
	}
}

// Start opens the checklist for an origin.
func (s *BackgroundCheckServiceImpl) Start(ctx context.Context, originID string) (*primary.Record, error) {
	record, err := s.Get(ctx, originID)
	if err != nil {
		return nil, err
	}

	if guard := bgcheck.CanStart(record.Status); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrAlreadyFinalized, guard.Reason)
	}

	return record, nil
}

// UpdateSelection overwrites the stored selection set, last writer wins.
func (s *BackgroundCheckServiceImpl) UpdateSelection(ctx context.Context, originID string, keys []string) (*primary.Record, error) {
	record, err := s.Get(ctx, originID)
	if err != nil {
		return nil, err
	}

	if guard := bgcheck.CanUpdateSelection(record.Status); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrAlreadyFinalized, guard.Reason)
	}

	normalized := bgcheck.NormalizeSelection(keys)

	// The UPDATE re-checks the unset status; a finalize that lands between
	// our read and this write makes it a no-op.
	ok, err := s.checkRepo.UpdateSelection(ctx, originID, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to update selection: %w", err)
	}
	if !ok {
		return nil, primary.ErrAlreadyFinalized
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "background_check", originID, fmt.Sprintf("selection: %s", strings.Join(normalized, ",")))
	}

	return s.Get(ctx, originID)
}

// Finalize commits the terminal verdict. The status re-check and write are
// one atomic store operation; under a concurrent race exactly one reviewer
// wins and the loser receives ErrAlreadyFinalized with no state change.
func (s *BackgroundCheckServiceImpl) Finalize(ctx context.Context, originID string, verdict bgcheck.Verdict) (*primary.Record, error) {
	record, err := s.Get(ctx, originID)
	if err != nil {
		return nil, err
	}

	if record.Status != bgcheck.StatusUnset {
		return nil, primary.ErrAlreadyFinalized
	}

	if guard := bgcheck.CanFinalize(record.Status, verdict, len(record.Selected)); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrChecklistIncomplete, guard.Reason)
	}

	won, err := s.checkRepo.Finalize(ctx, originID, string(verdict.Status()))
	if err != nil {
		return nil, fmt.Errorf("failed to finalize background check: %w", err)
	}
	if !won {
		return nil, primary.ErrAlreadyFinalized
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "background_check", originID, fmt.Sprintf("finalized: %s", verdict))
	}

	return s.Get(ctx, originID)
}

// Get retrieves the current record without mutating it.
func (s *BackgroundCheckServiceImpl) Get(ctx context.Context, originID string) (*primary.Record, error) {
	return loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, originID)
}

// Ensure BackgroundCheckServiceImpl implements the interface
var _ primary.BackgroundCheckService = (*BackgroundCheckServiceImpl)(nil)
