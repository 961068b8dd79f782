package auth

import "errors"

var (
	// ErrNotConfigured indicates no owner account is set up.
	ErrNotConfigured = errors.New("auth: owner account not configured")

	// ErrInvalidCredentials indicates the email or password did not match.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
