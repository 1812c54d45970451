package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrRoomNotFound = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrDraftNotFound   = errors.New("booking draft not found")
	ErrDraftExpired    = errors.New("booking draft expired")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Storage errors
	ErrStorageFailure = errors.New("storage operation failed")
)
