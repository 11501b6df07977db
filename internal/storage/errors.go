package storage

import "errors"

var (
	// ErrNotFound keeps store-level absence consistent across the in-memory
	// implementations. Absence is an expected result, not a failure; the
	// service layer decides whether it becomes a not-found error.
	ErrNotFound = errors.New("record not found")
)
