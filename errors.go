package vsts

import (
	"errors"
	"fmt"
	"time"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNilSession is returned when a client is created without a session.
	ErrNilSession = errors.New("session is required")

	// ErrAuthenticationFailed is returned when the service rejects the
	// session's credentials (HTTP 401 or 403).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrProjectNotFound is returned when a team project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRepositoryNotFound is returned when a Git repository is not found.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrWorkItemNotFound is returned when a work item is not found.
	ErrWorkItemNotFound = errors.New("work item not found")

	// ErrQueryNotFound is returned when a stored work item query is not found.
	ErrQueryNotFound = errors.New("work item query not found")

	// ErrProcessNotFound is returned when no process template matches the
	// requested name.
	ErrProcessNotFound = errors.New("process template not found")

	// ErrWaitTimeout is returned when a condition poll exhausts its attempt
	// budget before the awaited state is observed.
	ErrWaitTimeout = errors.New("wait timed out")
)

// VSTSError is implemented by all SDK errors.
type VSTSError interface {
	error
	VSTSError() // marker method
}

// APIError represents a non-success HTTP response from the service. The raw
// response body is preserved so callers can inspect the service's error
// details beyond the parsed envelope.
type APIError struct {
	StatusCode int
	Message    string
	TypeKey    string // exception type key, if returned by the service
	Body       []byte // raw response body

	resource api.ResourceType
}

func (e *APIError) Error() string {
	if e.TypeKey != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (%s)", e.StatusCode, e.Message, e.TypeKey)
		}
		return fmt.Sprintf("API error %d (%s)", e.StatusCode, e.TypeKey)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// VSTSError implements the VSTSError interface.
func (e *APIError) VSTSError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrAuthenticationFailed
	case 404:
		// The resource tag set by the originating operation picks the sentinel
		switch e.resource {
		case api.ResourceProject:
			return target == ErrProjectNotFound
		case api.ResourceRepository:
			return target == ErrRepositoryNotFound
		case api.ResourceWorkItem:
			return target == ErrWorkItemNotFound
		case api.ResourceQuery:
			return target == ErrQueryNotFound
		default:
			return target == ErrProjectNotFound || target == ErrRepositoryNotFound ||
				target == ErrWorkItemNotFound || target == ErrQueryNotFound
		}
	}
	return false
}

// NetworkError represents a network-level failure raised before any HTTP
// response was received.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// VSTSError implements the VSTSError interface.
func (e *NetworkError) VSTSError() {}

// TimeoutError represents a condition poll that exhausted its attempt budget.
type TimeoutError struct {
	Condition string
	Attempts  int
	Interval  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for %s after %d attempts (interval %v)", e.Condition, e.Attempts, e.Interval)
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrWaitTimeout
}

// VSTSError implements the VSTSError interface.
func (e *TimeoutError) VSTSError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			TypeKey:    apiErr.TypeKey,
			Body:       apiErr.Body,
			resource:   apiErr.ResourceType,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
