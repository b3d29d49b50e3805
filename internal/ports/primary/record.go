// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the workflow.
package primary

import "github.com/example/vouch/internal/core/bgcheck"

// Record represents a candidate record at the port boundary: the
// background check threaded together with its observation reports.
type Record struct {
	OriginID        string
	OriginChannelID string
	Candidate       string
	RecommenderID   string
	Note            string
	Status          bgcheck.Status
	Selected        []string
	Reports         []*Report
	SlotCount       int
	CreatedAt       string
	UpdatedAt       string
}

// Report represents one filed observation report at the port boundary.
type Report struct {
	Slot      int
	Date      string
	Notes     string
	Issues    string
	AuthorID  string
	CreatedAt string
}
