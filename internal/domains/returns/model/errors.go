package model

import (
	"errors"
	"fmt"
)

var (
	// ErrReturnNotFound indicates no return exists for the given id.
	ErrReturnNotFound = errors.New("return not found")

	// ErrIneligible indicates a book was not sold within the return window.
	ErrIneligible = errors.New("book not eligible for return")
)

// NewIneligibleError builds an ErrIneligible naming the offending book.
func NewIneligibleError(identifier string) error {
	return fmt.Errorf("%w: %s was not sold in the last %d days",
		ErrIneligible, identifier, ReturnWindowDays)
}

// IsIneligibleError checks if an error is an eligibility error.
func IsIneligibleError(err error) bool {
	return errors.Is(err, ErrIneligible)
}
