// Package app implements the primary ports: the workflow engines and the
// orchestrator that drives them.
package app

import (
	"context"
	"fmt"

	"github.com/example/vouch/internal/core/bgcheck"
	"github.com/example/vouch/internal/core/view"
	"github.com/example/vouch/internal/ports/primary"
	"github.com/example/vouch/internal/ports/secondary"
)

// loadRecord assembles the candidate record for an origin from the store.
// Engines never cache these across calls - the store is the only
// authoritative copy.
func loadRecord(ctx context.Context, checks secondary.BackgroundCheckRepository, observations secondary.ObservationRepository, slotCount int, originID string) (*primary.Record, error) {
	check, err := checks.GetByOrigin(ctx, originID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate record: %w", err)
	}
	if check == nil {
		return nil, primary.ErrRecordNotFound
	}

	reports, err := observations.ListByOrigin(ctx, originID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}

	return assembleRecord(check, reports, slotCount), nil
}

// assembleRecord threads a check and its reports into one port-level record.
func assembleRecord(check *secondary.CheckRecord, reports []*secondary.ObservationRecord, slotCount int) *primary.Record {
	record := &primary.Record{
		OriginID:        check.OriginID,
		OriginChannelID: check.OriginChannelID,
		Candidate:       check.Candidate,
		RecommenderID:   check.RecommenderID,
		Note:            check.Note,
		Status:          bgcheck.Status(check.Status),
		Selected:        check.SelectedKeys,
		SlotCount:       slotCount,
		CreatedAt:       check.CreatedAt,
		UpdatedAt:       check.UpdatedAt,
	}
	for _, r := range reports {
		record.Reports = append(record.Reports, reportFromRecord(r))
	}
	return record
}

func reportFromRecord(r *secondary.ObservationRecord) *primary.Report {
	return &primary.Report{
		Slot:      r.Slot,
		Date:      r.Date,
		Notes:     r.Notes,
		Issues:    r.Issues,
		AuthorID:  r.AuthorID,
		CreatedAt: r.CreatedAt,
	}
}

// projectRecord builds the renderable view for a record's current state.
func projectRecord(record *primary.Record) view.View {
	state := view.RecordState{
		OriginID:      record.OriginID,
		Candidate:     record.Candidate,
		RecommenderID: record.RecommenderID,
		Note:          record.Note,
		Status:        record.Status,
		Selected:      record.Selected,
		SlotCount:     record.SlotCount,
	}
	for _, r := range record.Reports {
		state.Reports = append(state.Reports, view.Report{
			Slot:     r.Slot,
			Date:     r.Date,
			Notes:    r.Notes,
			Issues:   r.Issues,
			AuthorID: r.AuthorID,
		})
	}
	return view.Project(state)
}
