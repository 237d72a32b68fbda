package shared

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Configuration errors
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Upstream errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTimeout            = fmt.Errorf("operation timed out")
	ErrDecode             = fmt.Errorf("failed to decode response")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrNoArtists          = fmt.Errorf("catalog track has no artists")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)

// APIError is returned when an upstream provider answers with a non-2xx status.
//
// It matches [ErrAPIRequest] with [errors.Is].
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

// NewAPIError builds an [APIError] for the named service.
func NewAPIError(service string, status int, message string) *APIError {
	return &APIError{Service: service, StatusCode: status, Message: message}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: status %d", e.Service, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPIRequest
}

// NotFound reports whether the upstream answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsAPIError reports whether err wraps an [APIError] and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
