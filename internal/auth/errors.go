package auth

import "errors"

var (
	// ErrAuthMismatch means the submitted role/credentials do not match.
	ErrAuthMismatch = errors.New("auth: invalid credentials")
	// ErrInvalidToken means the session cookie failed validation.
	ErrInvalidToken = errors.New("auth: invalid token")
)
