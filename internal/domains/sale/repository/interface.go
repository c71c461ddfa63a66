package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/sale/model"
)

// RepositoryInterface defines sale data access.
type RepositoryInterface interface {
	// InsertSaleTx appends the sale header inside an enclosing transaction
	// and returns the new id.
	InsertSaleTx(tx *sql.Tx, sale *model.Sale) (int64, error)

	// InsertLineTx appends one line of a sale and returns the line id.
	InsertLineTx(tx *sql.Tx, saleID int64, item model.LineItem) (int64, error)

	// Get returns a sale with its lines.
	// Returns model.ErrSaleNotFound when no row exists.
	Get(ctx context.Context, id int64) (*model.Sale, error)

	// ListByDate returns the sales of a YYYY-MM-DD day with their lines,
	// oldest first.
	ListByDate(ctx context.Context, date string) ([]model.Sale, error)

	// SoldWithin reports whether the book was sold in the last `days`
	// days, boundary inclusive. Backs return eligibility.
	SoldWithin(ctx context.Context, identifier string, days int) (bool, error)
}
