package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API token")
	// ErrEngineNotFound indicates the requested search engine does not exist.
	ErrEngineNotFound = errors.New("search engine not found")
	// ErrIndexNotFound indicates the requested index does not exist.
	ErrIndexNotFound = errors.New("index not found")
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrConflict indicates the resource already exists.
	ErrConflict = errors.New("resource conflict")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceEngine indicates the error relates to a search engine.
	ResourceEngine ResourceType = "engine"
	// ResourceIndex indicates the error relates to an index.
	ResourceIndex ResourceType = "index"
	// ResourceItem indicates the error relates to an item.
	ResourceItem ResourceType = "item"
)

// APIError represents an HTTP error from the SearchDock API.
type APIError struct {
	StatusCode   int
	Message      string
	RequestID    string
	ResourceType ResourceType
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

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		// Use ResourceType for precise error matching
		switch e.ResourceType {
		case ResourceEngine:
			return target == ErrEngineNotFound
		case ResourceIndex:
			return target == ErrIndexNotFound
		case ResourceItem:
			return target == ErrItemNotFound
		default:
			// Fallback: match all for unknown resource type
			return target == ErrEngineNotFound || target == ErrIndexNotFound || target == ErrItemNotFound
		}
	case 409:
		return target == ErrConflict
	case 429:
		return target == ErrRateLimited
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
			RequestID:    apiErr.RequestID,
			ResourceType: rt,
		}
	}
	return err
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}
