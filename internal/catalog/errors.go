package catalog

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("catalog: record not found")

	// ErrInvalidInput indicates a write payload failed validation.
	ErrInvalidInput = errors.New("catalog: invalid input")

	// ErrNoFields indicates a partial update carried nothing to change.
	ErrNoFields = errors.New("catalog: no fields to update")
)
