package users

import "errors"

var (
	// ErrNotFound means the requested user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrNoRecords means the store holds no users at all.
	ErrNoRecords = errors.New("no user records")
	// ErrConflict means the username or email is already taken.
	ErrConflict = errors.New("username or email already exists")
	// ErrStoreUnavailable means the underlying store failed; retryable.
	ErrStoreUnavailable = errors.New("user store unavailable")
)
