package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/vouch/internal/core/action"
	"github.com/example/vouch/internal/core/bgcheck"
	"github.com/example/vouch/internal/core/observation"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// WorkflowServiceImpl implements the WorkflowService interface: it maps
// each incoming action to the owning engine, enforces stage ordering, and
// reduces every result to a single user-visible outcome. It owns no
// persistent state of its own.
type WorkflowServiceImpl struct {
	recommendations primary.RecommendService
	checks          primary.BackgroundCheckService
	observations    primary.ObservationService
	broadcaster     primary.BroadcastService
	logWriter       secondary.LogWriter
}

// NewWorkflowService creates a new WorkflowService with injected dependencies.
// logWriter is optional - if nil, no audit logging is performed.
func NewWorkflowService(recommendations primary.RecommendService, checks primary.BackgroundCheckService, observations primary.ObservationService, broadcaster primary.BroadcastService, logWriter secondary.LogWriter) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		recommendations: recommendations,
		checks:          checks,
		observations:    observations,
		broadcaster:     broadcaster,
		logWriter:       logWriter,
	}
}

// Dispatch handles one typed action end to end. On any engine error no
// partial mutation is left behind; the error is reduced to one message for
// the actor who triggered it.
func (s *WorkflowServiceImpl) Dispatch(ctx context.Context, act action.Action) (*primary.Outcome, error) {
	switch a := act.(type) {
	case action.RecommendStart:
		resp, err := s.recommendations.Start(ctx, primary.StartRecommendationRequest{Candidate: a.Candidate, Note: a.Note})
		if err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{OK: true, Message: "Recommendation draft opened.", Token: resp.Token}, nil

	case action.RecommendContinue:
		if err := s.recommendations.Continue(ctx, a.Token); err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{OK: true, Message: "Draft extended.", Token: a.Token}, nil

	case action.RecommendCancel:
		if err := s.recommendations.Cancel(ctx, a.Token); err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{OK: true, Message: "Draft discarded."}, nil

	case action.RecommendSubmit:
		record, err := s.recommendations.Submit(ctx, a.Token)
		if err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{
			OK:      true,
			Message: fmt.Sprintf("Recommendation for %s posted (record %s).", record.Candidate, record.OriginID),
			Record:  record,
		}, nil

	case action.CheckStart:
		record, err := s.checks.Start(ctx, a.OriginID)
		if err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{OK: true, Message: "Background check open - mark criteria as you verify them.", Record: record}, nil

	case action.CheckSelect:
		record, err := s.checks.UpdateSelection(ctx, a.OriginID, a.Keys)
		if err != nil {
			return s.reduce(ctx, err)
		}
		s.broadcast(ctx, a.OriginID)
		return &primary.Outcome{
			OK:      true,
			Message: fmt.Sprintf("Checklist updated (%d of %d).", len(record.Selected), len(bgcheck.Criteria)),
			Record:  record,
		}, nil

	case action.CheckFinalize:
		record, err := s.checks.Finalize(ctx, a.OriginID, a.Verdict)
		if err != nil {
			return s.reduce(ctx, err)
		}
		s.broadcast(ctx, a.OriginID)
		msg := "Background check finalized: FAIL. The record is closed."
		if record.Status == bgcheck.StatusPass {
			msg = "Background check finalized: PASS. Observation reports are now open."
		}
		return &primary.Outcome{OK: true, Message: msg, Record: record}, nil

	case action.CheckCancel:
		// Dismisses the checklist widget; canonical state is untouched.
		return &primary.Outcome{OK: true, Message: "Checklist dismissed."}, nil

	case action.ReportStart:
		if outcome, err := s.requireObservationStage(ctx, a.OriginID); outcome != nil || err != nil {
			return outcome, err
		}
		resp, err := s.observations.Start(ctx, a.OriginID, a.Slot)
		if err != nil {
			return s.reduce(ctx, err)
		}
		if resp.Recorded {
			return &primary.Outcome{
				OK:      true,
				Message: fmt.Sprintf("Report %d was already filed by %s:\n%s", resp.Report.Slot, resp.Report.AuthorID, resp.Report.Notes),
			}, nil
		}
		return &primary.Outcome{OK: true, Message: fmt.Sprintf("Report %d is open - submit your observations.", a.Slot)}, nil

	case action.ReportView:
		if outcome, err := s.requireObservationStage(ctx, a.OriginID); outcome != nil || err != nil {
			return outcome, err
		}
		report, err := s.observations.View(ctx, a.OriginID, a.Slot)
		if err != nil {
			return s.reduce(ctx, err)
		}
		return &primary.Outcome{
			OK:      true,
			Message: fmt.Sprintf("Report %d by %s (%s):\n%s", report.Slot, report.AuthorID, report.Date, report.Notes),
		}, nil

	case action.ReportSubmit:
		if outcome, err := s.requireObservationStage(ctx, a.OriginID); outcome != nil || err != nil {
			return outcome, err
		}
		resp, err := s.observations.Submit(ctx, primary.SubmitReportRequest{
			OriginID: a.OriginID,
			Slot:     a.Slot,
			Date:     a.Date,
			Notes:    a.Notes,
			Issues:   a.Issues,
		})
		if err != nil {
			return s.reduce(ctx, err)
		}
		s.broadcast(ctx, a.OriginID)
		msg := fmt.Sprintf("Report %d filed.", a.Slot)
		if resp.MirrorCreated {
			msg = fmt.Sprintf("Report %d filed - all reports are in, the poll is open.", a.Slot)
		}
		return &primary.Outcome{OK: true, Message: msg, Record: resp.Record}, nil
	}

	return s.reduce(ctx, fmt.Errorf("%w: unhandled action %T", primary.ErrPreconditionViolated, act))
}

// requireObservationStage enforces the stage ordering precondition:
// observation actions are illegal unless the background check finalized as
// pass. Returns a non-nil outcome when the action must not proceed.
func (s *WorkflowServiceImpl) requireObservationStage(ctx context.Context, originID string) (*primary.Outcome, error) {
	record, err := s.checks.Get(ctx, originID)
	if err != nil {
		return s.reduce(ctx, err)
	}

	if guard := observation.StageOpen(record.Status); !guard.Allowed {
		return s.reduce(ctx, fmt.Errorf("%w: %s", primary.ErrPreconditionViolated, guard.Reason))
	}

	return nil, nil
}

// broadcast replicates the record's view after a successful mutation.
// Failures are logged, never surfaced - the mutation already committed.
func (s *WorkflowServiceImpl) broadcast(ctx context.Context, originID string) {
	if err := s.broadcaster.Broadcast(ctx, originID); err != nil && s.logWriter != nil {
		_ = s.logWriter.LogSkip(ctx, "broadcast", originID, err.Error())
	}
}

// reduce maps an engine error to the single user-visible outcome.
// Recoverable domain errors come back with a nil error; anything
// unexpected is logged and also returned for the caller's own handling.
func (s *WorkflowServiceImpl) reduce(ctx context.Context, err error) (*primary.Outcome, error) {
	var slotErr *primary.SlotRecordedError

	switch {
	case errors.Is(err, primary.ErrSessionExpired):
		return &primary.Outcome{Message: "Your draft session expired - please start the recommendation again."}, nil
	case errors.Is(err, primary.ErrRecordNotFound):
		return &primary.Outcome{Message: "This candidate record no longer exists."}, nil
	case errors.Is(err, primary.ErrAlreadyFinalized):
		return &primary.Outcome{Message: "Someone already finalized this background check."}, nil
	case errors.Is(err, primary.ErrChecklistIncomplete):
		return &primary.Outcome{Message: "A pass needs the complete checklist - verify every criterion or finalize as fail."}, nil
	case errors.As(err, &slotErr):
		return &primary.Outcome{Message: fmt.Sprintf("Report %d was already filed by %s - your draft was discarded.", slotErr.Slot, slotErr.AuthorID)}, nil
	case errors.Is(err, primary.ErrSlotNotRecorded):
		return &primary.Outcome{Message: "That report slot has not been filed yet."}, nil
	case errors.Is(err, primary.ErrPreconditionViolated):
		// Out-of-order stage requests come from the transport, not the
		// user; log the detail, surface a generic failure.
		if s.logWriter != nil {
			_ = s.logWriter.LogSkip(ctx, "workflow", "dispatch", err.Error())
		}
		return &primary.Outcome{Message: "That action is not available right now."}, nil
	default:
		if s.logWriter != nil {
			_ = s.logWriter.LogSkip(ctx, "workflow", "dispatch", err.Error())
		}
		return &primary.Outcome{Message: "Something went wrong - please try again."}, err
	}
}

// Ensure WorkflowServiceImpl implements the interface
var _ primary.WorkflowService = (*WorkflowServiceImpl)(nil)
