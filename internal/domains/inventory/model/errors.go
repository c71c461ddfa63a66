package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryNotFound is returned when no stock row exists for a
	// (book, position) pair.
	ErrEntryNotFound = errors.New("inventory entry not found")

	// ErrInvalidPosition is returned for slot labels outside the
	// {01..99} x {A..J} grid.
	ErrInvalidPosition = errors.New("invalid shelf position")

	// ErrInsufficientStock is returned when a consumption cannot be
	// satisfied across all positions of a book.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NewInsufficientStockError attaches the shortfall detail.
func NewInsufficientStockError(identifier string, requested, available int) error {
	return fmt.Errorf("%w: book %s, requested %d, available %d",
		ErrInsufficientStock, identifier, requested, available)
}

// IsInsufficientStockError reports whether err is a stock shortfall.
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}
