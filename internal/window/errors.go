package window

import (
	"errors"
	"strconv"
)

// invalidConfigError signals a window shape that cannot be applied.
type invalidConfigError struct{ msg string }

func (e invalidConfigError) Error() string { return "invalid window config: " + e.msg }

// ErrInvalidConfig constructs an invalidConfigError.
func ErrInvalidConfig(msg string) error { return invalidConfigError{msg: msg} }

// IsInvalidConfig reports whether err (or anything it wraps) is an invalid config.
func IsInvalidConfig(err error) bool {
	var e invalidConfigError
	return errors.As(err, &e)
}

// invalidTargetError signals a target that cannot be normalized because the
// sequence is empty.
type invalidTargetError struct{ target int }

func (e invalidTargetError) Error() string {
	return "invalid target " + strconv.Itoa(e.target) + ": sequence is empty"
}

// ErrInvalidTarget constructs an invalidTargetError.
func ErrInvalidTarget(target int) error { return invalidTargetError{target: target} }

// IsInvalidTarget reports whether err indicates an un-normalizable target.
func IsInvalidTarget(err error) bool {
	var e invalidTargetError
	return errors.As(err, &e)
}
