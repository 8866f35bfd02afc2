package slotpool

import (
	"errors"
	"fmt"

	"flipd/internal/window"
)

// emptySequenceError signals a shift over a sequence with no items. It is a
// terminal state, not a failure: the window is empty until the count grows.
type emptySequenceError struct{}

func (emptySequenceError) Error() string { return "empty sequence" }

// ErrEmptySequence constructs an emptySequenceError.
func ErrEmptySequence() error { return emptySequenceError{} }

// IsEmptySequence reports whether err indicates an empty sequence.
func IsEmptySequence(err error) bool {
	var e emptySequenceError
	return errors.As(err, &e)
}

// inconsistentSlotError is an internal invariant violation found while
// applying a shift. The shift is aborted and nothing is committed.
type inconsistentSlotError struct {
	logical int
	reason  string
}

func (e inconsistentSlotError) Error() string {
	return fmt.Sprintf("inconsistent slot %d: %s", e.logical, e.reason)
}

// ErrInconsistentSlot constructs an inconsistentSlotError.
func ErrInconsistentSlot(logical int, reason string) error {
	return inconsistentSlotError{logical: logical, reason: reason}
}

// IsInconsistentSlot reports whether err indicates a corrupted pool invariant.
func IsInconsistentSlot(err error) bool {
	var e inconsistentSlotError
	return errors.As(err, &e)
}

// IsInvalidConfig reports whether err indicates a rejected window config.
func IsInvalidConfig(err error) bool { return window.IsInvalidConfig(err) }

// IsInvalidTarget reports whether err indicates an un-normalizable target.
func IsInvalidTarget(err error) bool { return window.IsInvalidTarget(err) }
