package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/returns/model"
	saleModel "libreria-backend/internal/domains/sale/model"
)

// RepositoryInterface defines return data access.
type RepositoryInterface interface {
	// InsertTx appends the return header inside an enclosing transaction
	// and returns the new id.
	InsertTx(tx *sql.Tx, ret *model.Return) (int64, error)

	// InsertLineTx appends one line of a return and returns the line id.
	InsertLineTx(tx *sql.Tx, returnID int64, item saleModel.LineItem) (int64, error)

	// Get returns a return with its lines.
	// Returns model.ErrReturnNotFound when no row exists.
	Get(ctx context.Context, id int64) (*model.Return, error)
}
