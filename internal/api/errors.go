// file: internal/api/errors.go
// version: 1.0.0
// guid: 4b5c6d7e-8f9a-0b1c-2d3e-4f5a6b7c8d9e

package api

import (
	"errors"
	"fmt"
)

// APIError is returned when the backend answers with a non-2xx status.
// Message carries the server-supplied error field when the body was
// parseable JSON, otherwise a generic "HTTP error <status>" string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NetworkError is returned when the request never completed.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is an APIError with a 401 status,
// which means the held token is invalid or expired.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 401
}
