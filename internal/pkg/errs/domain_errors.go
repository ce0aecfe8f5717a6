package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("record not found")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// Booking errors
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("booking is not cancellable")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Auth errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
