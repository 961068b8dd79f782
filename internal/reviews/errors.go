package reviews

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyMissing indicates the Places API key is not configured.
	// Checked before any network call.
	ErrAPIKeyMissing = errors.New("reviews: API key not configured")

	// ErrPlaceNotFound indicates no place matched the configured ID or query.
	ErrPlaceNotFound = errors.New("reviews: place not found")
)

// UpstreamError carries a non-OK status reported by the Places API.
type UpstreamError struct {
	Status  string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("reviews: upstream returned %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("reviews: upstream returned %s", e.Status)
}
