package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/catalog/model"
)

// RepositoryInterface defines catalog data access.
type RepositoryInterface interface {
	// Upsert inserts the book or, when the identifier already exists,
	// updates every mutable field.
	Upsert(ctx context.Context, book *model.Book) error

	// Get returns the book for an identifier.
	// Returns model.ErrBookNotFound when no row exists.
	Get(ctx context.Context, identifier string) (*model.Book, error)

	// Search returns one BookView per (book, inventory entry) pair matching
	// the term under the given filters, ordered by title. Books without
	// stock appear once with nil position and quantity.
	Search(ctx context.Context, term string, filters model.SearchFilters) ([]model.BookView, error)

	// DeleteTx removes the book row inside an enclosing transaction.
	// Returns model.ErrBookNotFound when no row was deleted.
	DeleteTx(tx *sql.Tx, identifier string) error
}
