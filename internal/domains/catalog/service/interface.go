package service

import (
	"context"

	"libreria-backend/internal/domains/catalog/model"
)

// ServiceInterface defines the catalog operations offered to the GUI.
type ServiceInterface interface {
	// Upsert creates the book on first sighting or updates every mutable
	// field of an existing one.
	Upsert(ctx context.Context, req model.UpsertBookRequest) error

	// Get returns the book for a (possibly unstripped) identifier.
	Get(ctx context.Context, identifier string) (*model.Book, error)

	// Search runs the filtered catalog search.
	Search(ctx context.Context, term string, filters model.SearchFilters) ([]model.BookView, error)

	// Purge removes a book together with all of its stock rows in one
	// transaction. Sale, reservation and ledger history stay untouched.
	Purge(ctx context.Context, identifier string) error
}
