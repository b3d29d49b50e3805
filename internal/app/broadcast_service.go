package app

import (
	"context"
	"fmt"

	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// BroadcastServiceImpl implements the BroadcastService interface.
// Fan-out is best effort: every registered surface gets the same full
// re-render, unreachable surfaces are logged and skipped, and nothing is
// retried. A stale replica is tolerated over added complexity.
type BroadcastServiceImpl struct {
	checkRepo       secondary.BackgroundCheckRepository
	observationRepo secondary.ObservationRepository
	replicaRepo     secondary.ReplicaRepository
	messenger       secondary.Messenger
	logWriter       secondary.LogWriter
	slotCount       int
}

// NewBroadcastService creates a new BroadcastService with injected dependencies.
// logWriter is optional - if nil, no audit logging is performed.
func NewBroadcastService(checkRepo secondary.BackgroundCheckRepository, observationRepo secondary.ObservationRepository, replicaRepo secondary.ReplicaRepository, messenger secondary.Messenger, logWriter secondary.LogWriter, slotCount int) *BroadcastServiceImpl {
	return &BroadcastServiceImpl{
		checkRepo:       checkRepo,
		observationRepo: observationRepo,
		replicaRepo:     replicaRepo,
		messenger:       messenger,
		logWriter:       logWriter,
		slotCount:       slotCount,
	}
}

// Broadcast projects the record's current state and applies the same edit
// to every surface in its replica set.
func (s *BroadcastServiceImpl) Broadcast(ctx context.Context, originID string) error {
	record, err := loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, originID)
	if err != nil {
		return err
	}

	content := projectRecord(record).Render()

	refs, err := s.replicaRepo.ListByOrigin(ctx, originID)
	if err != nil {
		return fmt.Errorf("failed to list replicas: %w", err)
	}

	for _, ref := range refs {
		if err := s.messenger.Edit(ctx, ref.SurfaceChannelID, ref.SurfaceMessageID, content); err != nil {
			if s.logWriter != nil {
				_ = s.logWriter.LogSkip(ctx, "replica", fmt.Sprintf("%s/%s", ref.SurfaceChannelID, ref.SurfaceMessageID), err.Error())
			}
			continue
		}
	}

	return nil
}

// Ensure BroadcastServiceImpl implements the interface
var _ primary.BroadcastService = (*BroadcastServiceImpl)(nil)
