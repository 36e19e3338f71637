package booking

import "errors"

var (
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidCenter is returned when a booking references a center that
	// does not exist.
	ErrInvalidCenter = errors.New("referenced center does not exist")

	// ErrInvalidTransition is returned for a status change outside the
	// forward-only progression.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
