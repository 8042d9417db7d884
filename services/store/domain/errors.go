package domain

import "errors"

// Sentinel errors for the store domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrUsernameTaken indicates a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidUsername indicates the username violates domain constraints.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidItem indicates item fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrStoreUnavailable indicates the database could not be reached or
	// timed out. Callers may retry; the service itself does not.
	ErrStoreUnavailable = errors.New("store unavailable")
)
