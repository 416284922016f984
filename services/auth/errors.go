package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSession is returned when a session is absent or expired.
	ErrNoSession = errors.New("no active session")
)
