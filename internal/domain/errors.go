package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateHorizon means there are no years left to save over, so the
	// monthly savings figure is undefined.
	ErrDegenerateHorizon = errors.New("years to retire must be positive")

	// ErrArithmeticOverflow means a projected amount does not fit in an int64.
	ErrArithmeticOverflow = errors.New("projected amount out of range")
)

// ValidationError reports malformed or inconsistent input. Message is safe to
// show to end users as-is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err (or anything it wraps) is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
