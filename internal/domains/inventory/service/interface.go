package service

import (
	"context"

	"libreria-backend/internal/domains/inventory/model"
)

// ServiceInterface defines the shelf operations offered to the GUI.
type ServiceInterface interface {
	// AddOne puts one unit of a book on a shelf position, creating the
	// stock row when needed. Returns the resulting quantity.
	AddOne(ctx context.Context, identifier, position string) (int, error)

	// RemoveOne takes one unit off a position; the row disappears when it
	// reaches 0. Returns the remaining quantity. A second call after the
	// row disappeared fails with ErrEntryNotFound.
	RemoveOne(ctx context.Context, identifier, position string) (int, error)

	// Move relocates the stock at oldPosition, merging into the target
	// position when it already exists.
	Move(ctx context.Context, identifier, oldPosition, newPosition string) error

	// ListFor returns a book's entries ordered by position.
	ListFor(ctx context.Context, identifier string) ([]model.Entry, error)
}
