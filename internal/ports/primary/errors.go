package primary

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow operations. The orchestrator maps each of
// these to a single user-visible message; anything else is logged and
// reduced to a generic failure.
var (
	// ErrSessionExpired - draft token missing or TTL elapsed. Recoverable,
	// the user restarts the flow.
	ErrSessionExpired = errors.New("session expired")

	// ErrRecordNotFound - origin id unresolvable, e.g. the underlying
	// message was deleted. The flow is abandoned.
	ErrRecordNotFound = errors.New("candidate record not found")

	// ErrAlreadyFinalized - another reviewer committed the terminal
	// pass/fail first. Informational, no retry needed.
	ErrAlreadyFinalized = errors.New("background check already finalized")

	// ErrChecklistIncomplete - pass requested with a partial checklist.
	ErrChecklistIncomplete = errors.New("checklist incomplete")

	// ErrSlotAlreadyRecorded - another reviewer filed the report slot
	// first. Informational, no retry needed.
	ErrSlotAlreadyRecorded = errors.New("report slot already filed")

	// ErrSlotNotRecorded - view requested on an empty slot.
	ErrSlotNotRecorded = errors.New("report slot not filed yet")

	// ErrPreconditionViolated - stage requested out of order. Treated as a
	// transport/programming error, not a user mistake.
	ErrPreconditionViolated = errors.New("stage precondition violated")
)

// SlotRecordedError reports a lost slot race, naming the author whose
// report won. errors.Is(err, ErrSlotAlreadyRecorded) matches it.
type SlotRecordedError struct {
	Slot     int
	AuthorID string
}

func (e *SlotRecordedError) Error() string {
	return fmt.Sprintf("report slot %d already filed by %s", e.Slot, e.AuthorID)
}

// Is makes the typed error match the ErrSlotAlreadyRecorded sentinel.
func (e *SlotRecordedError) Is(target error) bool {
	return target == ErrSlotAlreadyRecorded
}
