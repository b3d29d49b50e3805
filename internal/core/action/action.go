// Package action defines the typed vocabulary of workflow actions.
// Incoming transport actions are parsed once at the boundary into these
// variants and dispatched via type switch - no string prefix matching
// inside the workflow.
package action

import "github.com/example/vouch/internal/core/bgcheck"

// Action is the closed set of workflow actions. Each variant carries its
// origin ID (or stash token) as a typed field.
type Action interface {
	isAction()
}

// RecommendStart opens a new recommendation draft.
type RecommendStart struct {
	Candidate string
	Note      string
}

// RecommendContinue advances a draft to a dependent step, resetting the
// draft's TTL to a full window.
type RecommendContinue struct {
	Token string
}

// RecommendCancel discards a draft.
type RecommendCancel struct {
	Token string
}

// RecommendSubmit posts the draft as the origin record.
type RecommendSubmit struct {
	Token string
}

// CheckStart opens the background-check checklist for an origin.
type CheckStart struct {
	OriginID string
}

// CheckSelect overwrites the checklist selection for an origin.
type CheckSelect struct {
	OriginID string
	Keys     []string
}

// CheckFinalize commits the terminal pass/fail verdict for an origin.
type CheckFinalize struct {
	OriginID string
	Verdict  bgcheck.Verdict
}

// CheckCancel dismisses the checklist without finalizing.
type CheckCancel struct {
	OriginID string
}

// ReportStart opens a report slot for filling, or views it if already filed.
type ReportStart struct {
	OriginID string
	Slot     int
}

// ReportView reads a filed report slot.
type ReportView struct {
	OriginID string
	Slot     int
}

// ReportSubmit files a report into a slot. Content is attributed to the
// acting user carried in the request context.
type ReportSubmit struct {
	OriginID string
	Slot     int
	Date     string
	Notes    string
	Issues   string
}

func (RecommendStart) isAction()    {}
func (RecommendContinue) isAction() {}
func (RecommendCancel) isAction()   {}
func (RecommendSubmit) isAction()   {}
func (CheckStart) isAction()        {}
func (CheckSelect) isAction()       {}
func (CheckFinalize) isAction()     {}
func (CheckCancel) isAction()       {}
func (ReportStart) isAction()       {}
func (ReportView) isAction()        {}
func (ReportSubmit) isAction()      {}
