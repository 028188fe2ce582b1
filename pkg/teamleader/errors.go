package teamleader

import (
	"errors"
	"fmt"
)

// APIError carries the raw response that produced a remote failure. It is the
// common portion of every remote-originated error kind; callers usually match
// on one of the concrete types below (or use the Is* helpers) rather than on
// APIError itself.
type APIError struct {
	StatusCode int
	Reason     string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("teamleader: %s (status %d)", e.Reason, e.StatusCode)
}

// AuthenticationError means the API rejected the credentials (status 401).
type AuthenticationError struct {
	APIError
}

// BadRequestError means the API rejected the request content (status 400).
type BadRequestError struct {
	APIError
}

// RateLimitExceededError means the API signaled throttling. Teamleader uses
// status 505 for this, not the standard 429.
type RateLimitExceededError struct {
	APIError
}

// UnknownAPIError is the catch-all for any other non-success status.
type UnknownAPIError struct {
	APIError
}

// InvalidInputError is raised locally, before any network call, when
// caller-supplied arguments fail validation. It never wraps a response.
type InvalidInputError struct {
	Argument string
	Message  string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Message != "" {
		return "teamleader: " + e.Message
	}

	return fmt.Sprintf("teamleader: invalid contents of argument %s", e.Argument)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrCredentialsRequired = errors.New("api group and api secret are required")
	ErrNoMoreRecords       = errors.New("no more records")
)

// IsInvalidInput checks if the error is a local validation error.
func IsInvalidInput(err error) bool {
	target := &InvalidInputError{}

	return errors.As(err, &target)
}

// IsAuthentication checks if the error is a credential rejection.
func IsAuthentication(err error) bool {
	target := &AuthenticationError{}

	return errors.As(err, &target)
}

// IsBadRequest checks if the error is a remote bad-request rejection.
func IsBadRequest(err error) bool {
	target := &BadRequestError{}

	return errors.As(err, &target)
}

// IsRateLimited checks if the error is a throttling signal.
func IsRateLimited(err error) bool {
	target := &RateLimitExceededError{}

	return errors.As(err, &target)
}
