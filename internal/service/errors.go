package service

import (
	"errors"
	"fmt"

	"github.com/arjun/callpilot/internal/vapi"
)

// ValidationError reports missing or malformed caller input. It is returned
// before any provider or persistence call is attempted.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError reports a failed read or write against the storage layer.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying storage error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ProviderErrorBody extracts the provider's raw error payload from err, or
// falls back to the error message. Handlers use this to surface provider
// failures verbatim, the way the dashboard expects them.
func ProviderErrorBody(err error) string {
	var pe *vapi.ProviderError
	if errors.As(err, &pe) && pe.Body != "" {
		return pe.Body
	}
	return err.Error()
}
