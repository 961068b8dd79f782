package contact

import "errors"

var (
	// ErrConfigIncomplete indicates required email configuration is missing.
	// Checked before any network call.
	ErrConfigIncomplete = errors.New("contact: email configuration is incomplete")

	// ErrMissingFields indicates a required field was empty after trimming.
	ErrMissingFields = errors.New("contact: missing required fields")
)

// InternalSendError marks a failed internal-notification send. This is
// the only failure that is fatal to the whole submission; the provider's
// diagnostic text is preserved for the caller.
type InternalSendError struct {
	Err error
}

func (e *InternalSendError) Error() string {
	return "contact: internal notification send failed: " + e.Err.Error()
}

func (e *InternalSendError) Unwrap() error {
	return e.Err
}

// ProviderResponse returns the provider's diagnostic text for the failed send.
func (e *InternalSendError) ProviderResponse() string {
	return e.Err.Error()
}
