package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/vouch/internal/core/observation"
	"github.com/example/vouch/internal/ctxutil"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// ObservationServiceImpl implements the ObservationService interface.
// Reports are write-once; completing the last slot creates the single poll
// mirror for the origin.
type ObservationServiceImpl struct {
	checkRepo       secondary.BackgroundCheckRepository
	observationRepo secondary.ObservationRepository
	replicaRepo     secondary.ReplicaRepository
	messenger       secondary.Messenger
	logWriter       secondary.LogWriter
	slotCount       int
	pollChannelID   string // Empty disables the poll mirror
}

// NewObservationService creates a new ObservationService with injected dependencies.
// logWriter is optional - if nil, no audit logging is performed.
func NewObservationService(checkRepo secondary.BackgroundCheckRepository, observationRepo secondary.ObservationRepository, replicaRepo secondary.ReplicaRepository, messenger secondary.Messenger, logWriter secondary.LogWriter, slotCount int, pollChannelID string) *ObservationServiceImpl {
	return &ObservationServiceImpl{
		checkRepo:       checkRepo,
		observationRepo: observationRepo,
		replicaRepo:     replicaRepo,
		messenger:       messenger,
		logWriter:       logWriter,
		slotCount:       slotCount,
		pollChannelID:   pollChannelID,
	}
}

// Start opens a slot for filling. A slot that is already filed redirects to
// a read-only view of the stored report instead of erroring.
func (s *ObservationServiceImpl) Start(ctx context.Context, originID string, slot int) (*primary.StartReportResponse, error) {
	if guard := observation.ValidSlot(slot, s.slotCount); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrPreconditionViolated, guard.Reason)
	}

	if _, err := loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, originID); err != nil {
		return nil, err
	}

	existing, err := s.observationRepo.GetBySlot(ctx, originID, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if existing != nil {
		return &primary.StartReportResponse{Recorded: true, Report: reportFromRecord(existing)}, nil
	}

	return &primary.StartReportResponse{Recorded: false}, nil
}

// Submit files a report into a slot, attributed to the acting user from
// context. The (origin, slot) insert is atomic: the loser of a race gets a
// *SlotRecordedError naming the winning author and its content is
// discarded entirely - no merge, no overwrite.
func (s *ObservationServiceImpl) Submit(ctx context.Context, req primary.SubmitReportRequest) (*primary.SubmitReportResponse, error) {
	if guard := observation.ValidSlot(req.Slot, s.slotCount); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrPreconditionViolated, guard.Reason)
	}

	if _, err := loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, req.OriginID); err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	conflict, err := s.observationRepo.Insert(ctx, &secondary.ObservationRecord{
		OriginID: req.OriginID,
		Slot:     req.Slot,
		Date:     date,
		Notes:    req.Notes,
		Issues:   req.Issues,
		AuthorID: ctxutil.ActorFromContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to file report: %w", err)
	}
	if conflict != nil {
		return nil, &primary.SlotRecordedError{Slot: conflict.Slot, AuthorID: conflict.AuthorID}
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "observation", fmt.Sprintf("%s/%d", req.OriginID, req.Slot))
	}

	mirrorCreated, err := s.maybeCreateMirror(ctx, req.OriginID)
	if err != nil {
		return nil, err
	}

	record, err := loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, req.OriginID)
	if err != nil {
		return nil, err
	}

	return &primary.SubmitReportResponse{Record: record, MirrorCreated: mirrorCreated}, nil
}

// View reads a filed slot.
func (s *ObservationServiceImpl) View(ctx context.Context, originID string, slot int) (*primary.Report, error) {
	if guard := observation.ValidSlot(slot, s.slotCount); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrPreconditionViolated, guard.Reason)
	}

	record, err := s.observationRepo.GetBySlot(ctx, originID, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if record == nil {
		return nil, primary.ErrSlotNotRecorded
	}

	return reportFromRecord(record), nil
}

// maybeCreateMirror creates the poll mirror once all slots are filled.
// Several slot completions can race to observe "all filled"; the claim is
// an atomic insert, so only one of them posts the mirror.
func (s *ObservationServiceImpl) maybeCreateMirror(ctx context.Context, originID string) (bool, error) {
	if s.pollChannelID == "" {
		return false, nil
	}

	count, err := s.observationRepo.CountByOrigin(ctx, originID)
	if err != nil {
		return false, fmt.Errorf("failed to count reports: %w", err)
	}
	if !observation.AllFilled(count, s.slotCount) {
		return false, nil
	}

	won, err := s.replicaRepo.ClaimPollMirror(ctx, originID, ctxutil.ActorFromContext(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to claim poll mirror: %w", err)
	}
	if !won {
		return false, nil
	}

	record, err := loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, originID)
	if err != nil {
		return false, err
	}

	messageID, err := s.messenger.Post(ctx, s.pollChannelID, projectRecord(record).Render())
	if err != nil {
		return false, fmt.Errorf("failed to post poll mirror: %w", err)
	}

	// Registered before the next broadcast so the mirror receives every
	// subsequent edit.
	if err := s.replicaRepo.Register(ctx, &secondary.ReplicaRef{
		OriginID:         originID,
		SurfaceChannelID: s.pollChannelID,
		SurfaceMessageID: messageID,
	}); err != nil {
		return false, err
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "poll_mirror", originID)
	}

	return true, nil
}

// Ensure ObservationServiceImpl implements the interface
var _ primary.ObservationService = (*ObservationServiceImpl)(nil)
