package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/vouch/internal/ctxutil"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// RecommendServiceImpl implements the RecommendService interface.
// Drafts live in the session stash between the initiating action and the
// deferred submit; the stash is process-lifetime only, so a restart just
// means the recommender starts over.
type RecommendServiceImpl struct {
	stash           secondary.SessionStash
	checkRepo       secondary.BackgroundCheckRepository
	observationRepo secondary.ObservationRepository
	replicaRepo     secondary.ReplicaRepository
	messenger       secondary.Messenger
	logWriter       secondary.LogWriter
	reviewChannelID string
	reactionMarker  string
	slotCount       int
	draftTTL        time.Duration
}

// NewRecommendService creates a new RecommendService with injected dependencies.
// logWriter is optional - if nil, no audit logging is performed.
func NewRecommendService(stash secondary.SessionStash, checkRepo secondary.BackgroundCheckRepository, observationRepo secondary.ObservationRepository, replicaRepo secondary.ReplicaRepository, messenger secondary.Messenger, logWriter secondary.LogWriter, reviewChannelID, reactionMarker string, slotCount int, draftTTL time.Duration) *RecommendServiceImpl {
	return &RecommendServiceImpl{
		stash:           stash,
		checkRepo:       checkRepo,
		observationRepo: observationRepo,
		replicaRepo:     replicaRepo,
		messenger:       messenger,
		logWriter:       logWriter,
		reviewChannelID: reviewChannelID,
		reactionMarker:  reactionMarker,
		slotCount:       slotCount,
		draftTTL:        draftTTL,
	}
}

// Start stashes a new recommendation draft and returns its token.
func (s *RecommendServiceImpl) Start(ctx context.Context, req primary.StartRecommendationRequest) (*primary.StartRecommendationResponse, error) {
	candidate := strings.TrimSpace(req.Candidate)
	if candidate == "" {
		return nil, fmt.Errorf("candidate name cannot be empty")
	}

	token := uuid.NewString()
	s.stash.Put(token, secondary.DraftPayload{
		Candidate:     candidate,
		Note:          strings.TrimSpace(req.Note),
		RecommenderID: ctxutil.ActorFromContext(ctx),
	}, s.draftTTL)

	return &primary.StartRecommendationResponse{Token: token}, nil
}

// Continue resets the draft's TTL to a full window.
func (s *RecommendServiceImpl) Continue(ctx context.Context, token string) error {
	if !s.stash.Refresh(token) {
		return primary.ErrSessionExpired
	}
	return nil
}

// Cancel consumes and discards the draft.
func (s *RecommendServiceImpl) Cancel(ctx context.Context, token string) error {
	if _, ok := s.stash.Consume(token); !ok {
		return primary.ErrSessionExpired
	}
	return nil
}

// Submit consumes the draft and turns it into the origin record: the
// posted message's identity becomes the origin id, the background check is
// seeded unset, and the origin surface becomes the first replica.
func (s *RecommendServiceImpl) Submit(ctx context.Context, token string) (*primary.Record, error) {
	draft, ok := s.stash.Consume(token)
	if !ok {
		return nil, primary.ErrSessionExpired
	}

	check := &secondary.CheckRecord{
		OriginChannelID: s.reviewChannelID,
		Candidate:       draft.Candidate,
		RecommenderID:   draft.RecommenderID,
		Note:            draft.Note,
		Status:          "unset",
	}

	// Post first: the message identity is the record's key.
	content := projectRecord(assembleRecord(check, nil, s.slotCount)).Render()
	originID, err := s.messenger.Post(ctx, s.reviewChannelID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to post recommendation: %w", err)
	}
	check.OriginID = originID

	if err := s.checkRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create candidate record: %w", err)
	}

	if err := s.replicaRepo.Register(ctx, &secondary.ReplicaRef{
		OriginID:         originID,
		SurfaceChannelID: s.reviewChannelID,
		SurfaceMessageID: originID,
	}); err != nil {
		return nil, err
	}

	// Reaction is a courtesy marker, not part of the canonical state.
	if s.reactionMarker != "" {
		if err := s.messenger.React(ctx, s.reviewChannelID, originID, s.reactionMarker); err != nil && s.logWriter != nil {
			_ = s.logWriter.LogSkip(ctx, "recommendation", originID, fmt.Sprintf("reaction failed: %v", err))
		}
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "recommendation", originID)
	}

	return loadRecord(ctx, s.checkRepo, s.observationRepo, s.slotCount, originID)
}

// Ensure RecommendServiceImpl implements the interface
var _ primary.RecommendService = (*RecommendServiceImpl)(nil)
