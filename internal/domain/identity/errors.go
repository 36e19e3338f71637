package identity

import "errors"

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCenter is returned when a practitioner signup references a
	// center that does not exist.
	ErrInvalidCenter = errors.New("referenced center does not exist")

	// ErrInvalidTransition is returned for a status change the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned when login email or password does
	// not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
