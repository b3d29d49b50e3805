// Package observation contains the pure business logic for observation reports.
// This is part of the Functional Core - no I/O, only pure functions.
package observation

import (
	"fmt"

	"github.com/example/vouch/internal/core/bgcheck"
)

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

// ValidSlot evaluates whether slot names one of the configured report slots.
// Slots are numbered 1..slotCount.
func ValidSlot(slot, slotCount int) GuardResult {
	if slot < 1 || slot > slotCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("report slot %d out of range 1..%d", slot, slotCount),
		}
	}
	return GuardResult{Allowed: true}
}

// StageOpen evaluates whether the observation stage is reachable.
// Rule: observation reports require a passed background check.
func StageOpen(status bgcheck.Status) GuardResult {
	switch status {
	case bgcheck.StatusPass:
		return GuardResult{Allowed: true}
	case bgcheck.StatusFail:
		return GuardResult{
			Allowed: false,
			Reason:  "candidate failed the background check - observation stage is closed",
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  "background check not passed yet - observation stage is not open",
		}
	}
}

// AllFilled reports whether every report slot has a recorded row.
func AllFilled(recorded, slotCount int) bool {
	return recorded >= slotCount
}
