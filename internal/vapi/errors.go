package vapi

import "fmt"

// ProviderError is returned when the provider responds with a non-2xx status
// or is unreachable. Body carries the provider's raw error payload when one
// was received; for transport failures it is empty and Err holds the cause.
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("provider request failed: %v", e.Err)
	}
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
