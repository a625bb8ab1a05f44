package searchdock

import (
	"errors"
	"fmt"

	"github.com/searchdock/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIToken is returned when no API token is provided.
	ErrMissingAPIToken = errors.New("API token is required")

	// ErrUnauthorized is returned when the API token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API token")

	// ErrEngineNotFound is returned when a search engine is not found.
	ErrEngineNotFound = errors.New("search engine not found")

	// ErrIndexNotFound is returned when an index is not found.
	ErrIndexNotFound = errors.New("index not found")

	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")

	// ErrConflict is returned when the resource already exists or the
	// request conflicts with server-side state.
	ErrConflict = errors.New("resource conflict")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// SearchDockError is implemented by all SDK errors.
type SearchDockError interface {
	error
	SearchDockError() // marker method
}

// Resource indicates which kind of resource an API error relates to.
type Resource string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown Resource = ""
	// ResourceEngine indicates the error relates to a search engine.
	ResourceEngine Resource = "engine"
	// ResourceIndex indicates the error relates to an index.
	ResourceIndex Resource = "index"
	// ResourceItem indicates the error relates to an item.
	ResourceItem Resource = "item"
)

// APIError represents an HTTP error from the SearchDock API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string // if returned by server
	Resource   Resource
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// SearchDockError implements the SearchDockError interface.
func (e *APIError) SearchDockError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.Resource {
		case ResourceEngine:
			return target == ErrEngineNotFound
		case ResourceIndex:
			return target == ErrIndexNotFound
		case ResourceItem:
			return target == ErrItemNotFound
		default:
			// Fallback: match any not-found sentinel for unknown resource type
			return target == ErrEngineNotFound || target == ErrIndexNotFound || target == ErrItemNotFound
		}
	case 409:
		return target == ErrConflict
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SearchDockError implements the SearchDockError interface.
func (e *NetworkError) SearchDockError() {}

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
			RequestID:  apiErr.RequestID,
			Resource:   Resource(apiErr.ResourceType),
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}

// Per-resource wrappers tag 404s before crossing the package boundary.

func engineError(err error) error {
	return wrapError(api.WithResourceType(err, api.ResourceEngine))
}

func indexError(err error) error {
	return wrapError(api.WithResourceType(err, api.ResourceIndex))
}

func itemError(err error) error {
	return wrapError(api.WithResourceType(err, api.ResourceItem))
}
