package model

import "errors"

var (
	// ErrClientNotFound is returned when no client exists for a phone or id.
	ErrClientNotFound = errors.New("client not found")

	// ErrNameConflict is returned by callers that cannot proceed on a
	// conflicting resolution (a phone already bound to a different name).
	ErrNameConflict = errors.New("phone already registered under a different name")

	// ErrInvalidPhone is returned when a phone contains anything but digits.
	ErrInvalidPhone = errors.New("phone must contain digits only")

	// ErrInvalidName is returned when a client name contains digits.
	ErrInvalidName = errors.New("client name must not contain digits")
)
