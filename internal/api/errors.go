package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrAuthenticationFailed indicates the service rejected the session's
	// credentials (401) or refused them access (403).
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrProjectNotFound indicates the requested team project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrRepositoryNotFound indicates the requested Git repository does not exist.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrWorkItemNotFound indicates the requested work item does not exist.
	ErrWorkItemNotFound = errors.New("work item not found")
	// ErrQueryNotFound indicates the requested stored query does not exist.
	ErrQueryNotFound = errors.New("work item query not found")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceProject indicates the error relates to a team project.
	ResourceProject ResourceType = "project"
	// ResourceRepository indicates the error relates to a Git repository.
	ResourceRepository ResourceType = "repository"
	// ResourceWorkItem indicates the error relates to a work item.
	ResourceWorkItem ResourceType = "workitem"
	// ResourceQuery indicates the error relates to a stored query.
	ResourceQuery ResourceType = "query"
)

// APIError represents a non-success HTTP response from the service. The raw
// response body is preserved alongside the parsed error envelope.
type APIError struct {
	StatusCode   int
	Message      string
	TypeKey      string
	Body         []byte
	ResourceType ResourceType
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
		// Use ResourceType for precise error matching
		switch e.ResourceType {
		case ResourceProject:
			return target == ErrProjectNotFound
		case ResourceRepository:
			return target == ErrRepositoryNotFound
		case ResourceWorkItem:
			return target == ErrWorkItemNotFound
		case ResourceQuery:
			return target == ErrQueryNotFound
		default:
			// Fallback: match any not-found sentinel for unknown resource type
			return target == ErrProjectNotFound || target == ErrRepositoryNotFound ||
				target == ErrWorkItemNotFound || target == ErrQueryNotFound
		}
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			TypeKey:      apiErr.TypeKey,
			Body:         apiErr.Body,
			ResourceType: rt,
		}
	}
	return err
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// VSTSError implements the VSTSError interface.
func (e *NetworkError) VSTSError() {}
