package domain

import "errors"

// Error taxonomy shared by all booking components.
// Every failure leaves the committed snapshot unchanged.
var (
	// ErrValidation malformed or incomplete input
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized admin gate is closed
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSlotClosed slot is administratively closed on that date
	ErrSlotClosed = errors.New("slot closed")

	// ErrSlotTaken a reservation already exists for the (date, slot) pair
	ErrSlotTaken = errors.New("slot taken")

	// ErrHorizonExceeded date is in the past or beyond the booking horizon
	ErrHorizonExceeded = errors.New("horizon exceeded")

	// ErrRangeInvalid bad bulk range or a bound beyond the booking horizon
	ErrRangeInvalid = errors.New("range invalid")

	// ErrNotFound entity does not exist
	ErrNotFound = errors.New("not found")
)
