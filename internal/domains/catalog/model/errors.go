package model

import "errors"

var (
	// ErrBookNotFound is returned when no book exists for an identifier.
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidIdentifier is returned when an identifier is not 10 or 13
	// digits after stripping separators.
	ErrInvalidIdentifier = errors.New("invalid book identifier")

	// ErrPriceBelowMinimum is returned when a price is under the store
	// minimum.
	ErrPriceBelowMinimum = errors.New("price is below the minimum sale price")

	// ErrEmptyTitle is returned when a book is upserted without a title.
	ErrEmptyTitle = errors.New("book title must not be empty")
)
