package vsts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNilSession", ErrNilSession},
		{"ErrAuthenticationFailed", ErrAuthenticationFailed},
		{"ErrProjectNotFound", ErrProjectNotFound},
		{"ErrRepositoryNotFound", ErrRepositoryNotFound},
		{"ErrWorkItemNotFound", ErrWorkItemNotFound},
		{"ErrQueryNotFound", ErrQueryNotFound},
		{"ErrProcessNotFound", ErrProcessNotFound},
		{"ErrWaitTimeout", ErrWaitTimeout},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{StatusCode: 401, Message: "TF400813: not authorized"},
			expected: "API error 401: TF400813: not authorized",
		},
		{
			name:     "without message",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with type key",
			err:      &APIError{StatusCode: 404, Message: "project does not exist", TypeKey: "ProjectDoesNotExistWithNameException"},
			expected: "API error 404: project does not exist (ProjectDoesNotExistWithNameException)",
		},
		{
			name:     "with type key only",
			err:      &APIError{StatusCode: 500, TypeKey: "InternalException"},
			expected: "API error 500 (InternalException)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		expected   bool
	}{
		{"401 matches ErrAuthenticationFailed", 401, ErrAuthenticationFailed, true},
		{"403 matches ErrAuthenticationFailed", 403, ErrAuthenticationFailed, true},
		{"500 does not match ErrAuthenticationFailed", 500, ErrAuthenticationFailed, false},
		{"401 does not match ErrProjectNotFound", 401, ErrProjectNotFound, false},
		{"200 does not match anything", 200, ErrAuthenticationFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode}
			result := errors.Is(err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAPIError_Is_404Differentiation(t *testing.T) {
	tests := []struct {
		name     string
		resource api.ResourceType
		target   error
		expected bool
	}{
		{"project resource matches ErrProjectNotFound", api.ResourceProject, ErrProjectNotFound, true},
		{"project resource does not match ErrRepositoryNotFound", api.ResourceProject, ErrRepositoryNotFound, false},
		{"repository resource matches ErrRepositoryNotFound", api.ResourceRepository, ErrRepositoryNotFound, true},
		{"work item resource matches ErrWorkItemNotFound", api.ResourceWorkItem, ErrWorkItemNotFound, true},
		{"query resource matches ErrQueryNotFound", api.ResourceQuery, ErrQueryNotFound, true},
		{"unknown resource matches ErrProjectNotFound", api.ResourceUnknown, ErrProjectNotFound, true},
		{"unknown resource matches ErrWorkItemNotFound", api.ResourceUnknown, ErrWorkItemNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: 404, resource: tt.resource}
			result := errors.Is(err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v for resource type %q", result, tt.expected, tt.resource)
			}
		})
	}
}

func TestNetworkError_Error(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	expected := "network error: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	unwrapped := err.Unwrap()
	if unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
}

func TestNetworkError_Is(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should match underlying error")
	}
}

func TestTimeoutError_Error(t *testing.T) {
	err := &TimeoutError{Condition: `project "Alpha" to exist`, Attempts: 31, Interval: 2000000000}

	expected := `timed out waiting for project "Alpha" to exist after 31 attempts (interval 2s)`
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestTimeoutError_Is(t *testing.T) {
	err := &TimeoutError{Condition: "repository to exist", Attempts: 5}

	if !errors.Is(err, ErrWaitTimeout) {
		t.Error("errors.Is() should match ErrWaitTimeout")
	}
	if errors.Is(err, ErrProjectNotFound) {
		t.Error("errors.Is() should not match ErrProjectNotFound")
	}
}

func TestErrorWrapping(t *testing.T) {
	root := errors.New("root cause")
	wrapped := fmt.Errorf("wrapped: %w", root)
	netErr := &NetworkError{Err: wrapped}

	if !errors.Is(netErr, root) {
		t.Error("errors.Is() should match through wrapped chain")
	}
}

func TestWrapError_PreservesAPIError(t *testing.T) {
	internalErr := &api.APIError{
		StatusCode: 401,
		Message:    "TF400813: not authorized",
		TypeKey:    "UnauthorizedRequestException",
		Body:       []byte(`{"message": "TF400813: not authorized"}`),
	}

	wrapped := wrapError(internalErr)

	var publicErr *APIError
	if !errors.As(wrapped, &publicErr) {
		t.Fatal("wrapError should convert internal API error to public APIError")
	}

	if publicErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", publicErr.StatusCode)
	}
	if publicErr.Message != "TF400813: not authorized" {
		t.Errorf("Message = %s, want 'TF400813: not authorized'", publicErr.Message)
	}
	if publicErr.TypeKey != "UnauthorizedRequestException" {
		t.Errorf("TypeKey = %s, want 'UnauthorizedRequestException'", publicErr.TypeKey)
	}
	if string(publicErr.Body) != `{"message": "TF400813: not authorized"}` {
		t.Errorf("Body = %s, want original body", publicErr.Body)
	}

	if !errors.Is(wrapped, ErrAuthenticationFailed) {
		t.Error("wrapped error should match ErrAuthenticationFailed sentinel")
	}
}

func TestWrapError_PreservesNetworkError(t *testing.T) {
	underlying := errors.New("connection refused")
	internalErr := &api.NetworkError{
		Err: underlying,
		URL: "https://fabrikam.visualstudio.com/DefaultCollection/_apis/projects",
	}

	wrapped := wrapError(internalErr)

	var publicErr *NetworkError
	if !errors.As(wrapped, &publicErr) {
		t.Fatal("wrapError should convert internal network error to public NetworkError")
	}

	if publicErr.URL != "https://fabrikam.visualstudio.com/DefaultCollection/_apis/projects" {
		t.Errorf("URL = %s", publicErr.URL)
	}

	if !errors.Is(wrapped, underlying) {
		t.Error("wrapped error should still match underlying error")
	}
}

func TestWrapError_PassesThroughOther(t *testing.T) {
	originalErr := errors.New("some other error")

	wrapped := wrapError(originalErr)

	if wrapped != originalErr {
		t.Error("wrapError should pass through non-API/non-Network errors unchanged")
	}
}

func TestWrapError_NilReturnsNil(t *testing.T) {
	wrapped := wrapError(nil)
	if wrapped != nil {
		t.Error("wrapError(nil) should return nil")
	}
}

func TestErrorChain_CanUnwrapToSentinel(t *testing.T) {
	tests := []struct {
		name          string
		internalErr   error
		expectedMatch error
	}{
		{
			name:          "401 matches ErrAuthenticationFailed",
			internalErr:   &api.APIError{StatusCode: 401, Message: "not authorized"},
			expectedMatch: ErrAuthenticationFailed,
		},
		{
			name:          "403 matches ErrAuthenticationFailed",
			internalErr:   &api.APIError{StatusCode: 403, Message: "access denied"},
			expectedMatch: ErrAuthenticationFailed,
		},
		{
			name:          "404 with project resource matches ErrProjectNotFound",
			internalErr:   &api.APIError{StatusCode: 404, Message: "not found", ResourceType: api.ResourceProject},
			expectedMatch: ErrProjectNotFound,
		},
		{
			name:          "404 with repository resource matches ErrRepositoryNotFound",
			internalErr:   &api.APIError{StatusCode: 404, Message: "not found", ResourceType: api.ResourceRepository},
			expectedMatch: ErrRepositoryNotFound,
		},
		{
			name:          "404 with query resource matches ErrQueryNotFound",
			internalErr:   &api.APIError{StatusCode: 404, Message: "not found", ResourceType: api.ResourceQuery},
			expectedMatch: ErrQueryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapError(tt.internalErr)

			if !errors.Is(wrapped, tt.expectedMatch) {
				t.Errorf("wrapped error should match %v", tt.expectedMatch)
			}

			doubleWrapped := fmt.Errorf("operation failed: %w", wrapped)
			if !errors.Is(doubleWrapped, tt.expectedMatch) {
				t.Errorf("double-wrapped error should still match %v", tt.expectedMatch)
			}
		})
	}
}

func TestVSTSErrorInterface(t *testing.T) {
	// Every typed error implements the marker interface
	var _ VSTSError = (*APIError)(nil)
	var _ VSTSError = (*NetworkError)(nil)
	var _ VSTSError = (*TimeoutError)(nil)
}
