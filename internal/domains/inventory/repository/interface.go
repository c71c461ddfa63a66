package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/inventory/model"
)

// RepositoryInterface defines stock data access. Every mutation takes the
// enclosing transaction: the check-then-write branches below are only safe
// inside one.
type RepositoryInterface interface {
	// AddOneTx increments the entry at (identifier, position), creating it
	// with quantity 1 when missing. Returns the resulting quantity.
	AddOneTx(tx *sql.Tx, identifier, position string) (int, error)

	// RemoveOneTx decrements the entry, deleting the row when the quantity
	// would reach 0. Returns the remaining quantity (0 when deleted).
	// Returns model.ErrEntryNotFound when no row exists.
	RemoveOneTx(tx *sql.Tx, identifier, position string) (int, error)

	// MoveTx relabels the entry at oldPosition. Equal positions are a
	// no-op; an existing target entry is merged (summed) and the source
	// row deleted. Returns model.ErrEntryNotFound when the source row is
	// missing.
	MoveTx(tx *sql.Tx, identifier, oldPosition, newPosition string) error

	// ConsumeTx removes quantity units of a book, draining entries ordered
	// by quantity desc then position asc. Returns ErrInsufficientStock
	// when the book's total stock cannot cover the request; the enclosing
	// transaction is expected to roll back.
	ConsumeTx(tx *sql.Tx, identifier string, quantity int) error

	// RestoreSmallestTx puts quantity units back on the smallest existing
	// position of the book, or on the UNSHELVED sentinel when the book has
	// no entries. Used when cancelling reservations.
	RestoreSmallestTx(tx *sql.Tx, identifier string, quantity int) error

	// RestoreLargestTx puts quantity units back on the entry currently
	// holding the most stock, or on UNSHELVED when there is none. Used by
	// returns.
	RestoreLargestTx(tx *sql.Tx, identifier string, quantity int) error

	// DeleteAllForTx removes every entry of a book. Returns the number of
	// rows deleted.
	DeleteAllForTx(tx *sql.Tx, identifier string) (int, error)

	// ListFor returns the entries of a book ordered by position.
	ListFor(ctx context.Context, identifier string) ([]model.Entry, error)

	// TotalFor returns the summed quantity of a book across positions.
	TotalFor(ctx context.Context, identifier string) (int, error)
}
