package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Fleet errors
	ErrUnknownCategory = errors.New("unknown car category")
	ErrInvalidCarCount = errors.New("car count must be positive")
)
