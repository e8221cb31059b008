package client

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation marks errors raised locally before any network call:
	// malformed input, missing selectors, missing credentials.
	ErrValidation = errors.New("validation error")

	ErrKeyNotFound   = errors.New("key not found")
	ErrAPIKeyInvalid = errors.New("api key invalid")
)

// APIError is any non-2xx response from the memory service that does not
// translate to a more specific error value. It carries the server's parsed
// error body when one was present.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorType == "" && e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (status %d): %s - %s", e.StatusCode, e.ErrorType, e.Message)
}

// ErrRateLimited reports a 429 with the server-provided cooldown. The
// client never sleeps or retries on its own; callers own any retry policy.
type ErrRateLimited struct {
	Message    string
	RetryAfter time.Duration
	Limit      float64 // requests per second granted to this key
	Burst      int
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limited: %s (retry after %v)", e.Message, e.RetryAfter)
}

// ErrorResponse is the JSON error body the service attaches to non-2xx
// responses.
type ErrorResponse struct {
	ErrorType         string  `json:"error_type"`
	Message           string  `json:"message"`
	RetryAfterSeconds float64 `json:"retry_after_seconds,omitempty"`
	Limit             float64 `json:"limit,omitempty"`
	Burst             int     `json:"burst,omitempty"`
}
