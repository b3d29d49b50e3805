package bgcheck

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanStart evaluates whether the checklist stage can be opened.
// Rule: a finalized check is terminal - no further check actions.
func CanStart(status Status) GuardResult {
	if status != StatusUnset {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("background check already finalized as %s", status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateSelection evaluates whether the selection set may be rewritten.
// Rule: selection is only a draft while the check is unset.
func CanUpdateSelection(status Status) GuardResult {
	return CanStart(status)
}

// CanFinalize evaluates whether the requested verdict may be committed.
// Rules: a finalized check is terminal, and a pass verdict requires the
// complete checklist - with a partial selection only fail is offered.
// This is the guard-level precheck; the store re-checks the unset status
// atomically at commit time, so two racing reviewers cannot both win.
func CanFinalize(status Status, verdict Verdict, selectedCount int) GuardResult {
	if status != StatusUnset {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("background check already finalized as %s", status),
		}
	}
	if verdict == VerdictPass && selectedCount < len(Criteria) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot pass with %d of %d criteria checked - complete the checklist or finalize as fail", selectedCount, len(Criteria)),
		}
	}
	return GuardResult{Allowed: true}
}
