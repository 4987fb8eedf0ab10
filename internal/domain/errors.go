package domain

import "errors"

// ErrNotFound is returned (usually wrapped) when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports the first input field that failed validation.
// It is always raised before any state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
