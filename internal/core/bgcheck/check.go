// Package bgcheck contains the pure business logic for background checks.
// This is part of the Functional Core - no I/O, only pure functions.
package bgcheck

// Status is the terminal state of a background check.
// A check stays StatusUnset while criteria are being selected; the first
// durably committed finalize sets it to pass or fail, permanently.
type Status string

const (
	// StatusUnset means the check has not been finalized.
	StatusUnset Status = "unset"
	// StatusPass means the check was finalized as passed.
	StatusPass Status = "pass"
	// StatusFail means the check was finalized as failed.
	StatusFail Status = "fail"
)

// Verdict is the finalize action requested by a reviewer.
type Verdict string

const (
	// VerdictPass requests finalization as passed.
	VerdictPass Verdict = "pass"
	// VerdictFail requests finalization as failed.
	VerdictFail Verdict = "fail"
)

// Status converts a verdict into the status it commits.
func (v Verdict) Status() Status {
	if v == VerdictPass {
		return StatusPass
	}
	return StatusFail
}

// Criterion is one item of the fixed background-check checklist.
type Criterion struct {
	Key   string
	Label string
}

// Criteria is the fixed 5-item checklist every candidate is vetted against.
var Criteria = []Criterion{
	{Key: "identity", Label: "Identity verified"},
	{Key: "history", Label: "History reviewed"},
	{Key: "references", Label: "References contacted"},
	{Key: "conduct", Label: "Conduct record clean"},
	{Key: "activity", Label: "Activity level sufficient"},
}

// ValidKey reports whether key names one of the fixed criteria.
func ValidKey(key string) bool {
	for _, c := range Criteria {
		if c.Key == key {
			return true
		}
	}
	return false
}

// NormalizeSelection drops unknown keys and duplicates, preserving order.
// The result is what gets persisted; selection is a draft, so the latest
// write simply replaces the previous one.
func NormalizeSelection(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	var out []string
	for _, k := range keys {
		if !ValidKey(k) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
