package jwt

import "errors"

var (
	// ErrEmptySecret indicates the signing secret was not configured.
	ErrEmptySecret = errors.New("jwt: signing secret is required")

	// ErrSignFailed indicates the token could not be signed.
	ErrSignFailed = errors.New("jwt: failed to sign token")

	// ErrInvalidToken indicates the token failed validation.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("jwt: token expired")
)
