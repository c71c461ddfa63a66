package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/ledger/model"
)

// RepositoryInterface defines ledger data access. Writes are append-only;
// there is no update or delete.
type RepositoryInterface interface {
	// InsertIncomeTx appends an income inside an enclosing transaction and
	// returns the new id.
	InsertIncomeTx(tx *sql.Tx, entry *model.Entry) (int64, error)

	// InsertExpenseTx appends an expense inside an enclosing transaction
	// and returns the new id.
	InsertExpenseTx(tx *sql.Tx, entry *model.Entry) (int64, error)

	// IncomesByDate returns the incomes of a YYYY-MM-DD day, oldest first.
	IncomesByDate(ctx context.Context, date string) ([]model.Entry, error)

	// ExpensesByDate returns the expenses of a YYYY-MM-DD day.
	ExpensesByDate(ctx context.Context, date string) ([]model.Entry, error)

	// IncomesByReservation returns the incomes linked to a reservation.
	IncomesByReservation(ctx context.Context, reservationID int64) ([]model.Entry, error)

	// ExpensesByReservation returns the expenses linked to a reservation.
	ExpensesByReservation(ctx context.Context, reservationID int64) ([]model.Entry, error)

	// IncomesBySale returns the incomes linked to a sale.
	IncomesBySale(ctx context.Context, saleID int64) ([]model.Entry, error)

	// ExpensesByReturn returns the expenses linked to a return.
	ExpensesByReturn(ctx context.Context, returnID int64) ([]model.Entry, error)
}
