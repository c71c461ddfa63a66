package model

import (
	"errors"
	"fmt"
)

var (
	// ErrReservationNotFound is returned when no reservation exists for an id.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotPending is returned when a deposit, conversion or cancellation
	// targets a terminal reservation.
	ErrNotPending = errors.New("reservation is not pending")

	// ErrInvalidDeposit is returned for a zero or negative deposit; a
	// pending reservation always carries money down.
	ErrInvalidDeposit = errors.New("deposit must be positive")

	// ErrDepositExceedsTotal is returned when a deposit would push the
	// paid amount past the reservation total.
	ErrDepositExceedsTotal = errors.New("deposit exceeds the reservation total")

	// ErrInsufficientPayment is returned when a conversion payment does
	// not cover the residual amount.
	ErrInsufficientPayment = errors.New("final payment does not cover the residual amount")
)

// NewNotPendingError attaches the actual state.
func NewNotPendingError(state string) error {
	return fmt.Errorf("%w: state is %s", ErrNotPending, state)
}
