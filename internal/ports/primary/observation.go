package primary

import "context"

// ObservationService defines the primary port for the observation stage.
type ObservationService interface {
	// Start opens a slot for filling. If the slot is already filed this
	// redirects to a read-only view of the stored report - an intentional
	// shortcut, not an error.
	Start(ctx context.Context, originID string, slot int) (*StartReportResponse, error)

	// Submit files a report into a slot, attributed to the acting user
	// from context. The loser of a concurrent submit race receives a
	// *SlotRecordedError and its content is discarded entirely.
	Submit(ctx context.Context, req SubmitReportRequest) (*SubmitReportResponse, error)

	// View reads a filed slot. Returns ErrSlotNotRecorded when empty.
	View(ctx context.Context, originID string, slot int) (*Report, error)
}

// StartReportResponse tells the caller whether to collect content or show
// the already-filed report.
type StartReportResponse struct {
	Recorded bool
	Report   *Report // Set when Recorded
}

// SubmitReportRequest contains the content of one observation report.
type SubmitReportRequest struct {
	OriginID string
	Slot     int
	Date     string
	Notes    string
	Issues   string
}

// SubmitReportResponse contains the updated record and whether this submit
// completed the stage and created the poll mirror.
type SubmitReportResponse struct {
	Record        *Record
	MirrorCreated bool
}
