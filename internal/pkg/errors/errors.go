package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for missing or invalid owner identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input; never retryable.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable wraps transient storage failures; safe to retry,
	// every core operation is idempotent or constraint-protected.
	ErrStoreUnavailable = errors.New("store unavailable")
)
