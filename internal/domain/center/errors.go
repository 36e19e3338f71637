package center

import "errors"

var (
	// ErrNotFound is returned when no center matches the lookup.
	ErrNotFound = errors.New("center not found")

	// ErrDuplicateCenter is returned when a center with the same name and
	// location already exists.
	ErrDuplicateCenter = errors.New("center with this name and location already exists")
)
