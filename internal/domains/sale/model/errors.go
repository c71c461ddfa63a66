package model

import "errors"

var (
	// ErrSaleNotFound is returned when no sale exists for an id.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrNoItems is returned when a sale is submitted without items.
	ErrNoItems = errors.New("sale must contain at least one item")

	// ErrInvalidLine is returned for a line with a bad quantity or price,
	// or with neither identifier nor description.
	ErrInvalidLine = errors.New("invalid line item")
)
