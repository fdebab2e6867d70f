package domain

import "errors"

var (
	// ErrQueryTooShort is the local advisory for inputs below the
	// minimum search length. Recoverable, never fatal.
	ErrQueryTooShort = errors.New("Please enter at least 3 characters to search.")

	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
)
