// file: internal/controller/errors.go
// version: 1.0.0
// guid: 4f5a6b7c-8d9e-0f1a-2b3c-4d5e6f7a8b9c

package controller

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned at startup when the persisted token fails
// the health probe; the caller clears the token and demands a login.
var ErrAuthRequired = errors.New("authentication required")

// ValidationError is a client-side required-field failure. It never
// reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConsistencyError reports a desync between locally mirrored
// collections, e.g. a book marked Issued with no Pending issue record.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("local data inconsistency: %s", e.Detail)
}
