package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query sides
var (
	// Catalog errors
	ErrPackageNotFound  = errors.New("package not found")
	ErrAddonNotFound    = errors.New("addon not found")
	ErrResourceNotFound = errors.New("resource not found")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingConflict         = errors.New("booking conflict")
	ErrOutsideOpeningHours     = errors.New("outside opening hours")
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// Settings errors
	ErrSettingsNotFound = errors.New("venue settings not found")

	// Idempotency errors
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
