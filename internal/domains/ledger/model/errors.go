package model

import "errors"

var (
	// ErrInvalidAmount is returned when a ledger amount is not positive.
	ErrInvalidAmount = errors.New("ledger amount must be positive")

	// ErrInvalidDate is returned when a date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)
