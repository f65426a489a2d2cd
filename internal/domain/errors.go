package domain

import "errors"

var (
	// ErrInvalidMessage marks a malformed send request (empty text or
	// missing receiver). Surfaced to the sender only, never broadcast.
	ErrInvalidMessage = errors.New("invalid message data")

	// ErrStoreUnavailable marks a conversation store failure. Callers must
	// not assume partial success.
	ErrStoreUnavailable = errors.New("conversation store unavailable")

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
