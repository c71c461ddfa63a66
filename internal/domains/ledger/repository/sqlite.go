package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/ledger/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the ledger repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) insertTx(tx *sql.Tx, table string, entry *model.Entry) (int64, error) {
	if entry.Amount <= 0 {
		return 0, model.ErrInvalidAmount
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = database.Now()
	}

	res, err := tx.Exec(`
		INSERT INTO `+table+` (amount, concept, payment_method, created_at,
			sale_id, reservation_id, return_id, sale_line_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Amount,
		entry.Concept,
		entry.PaymentMethod,
		entry.CreatedAt,
		entry.SaleID,
		entry.ReservationID,
		entry.ReturnID,
		entry.SaleLineID,
	)
	if err != nil {
		return 0, database.WrapStorage("append "+table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("append "+table, err)
	}
	entry.ID = id
	return id, nil
}

// InsertIncomeTx implements RepositoryInterface.InsertIncomeTx.
func (r *sqliteRepository) InsertIncomeTx(tx *sql.Tx, entry *model.Entry) (int64, error) {
	return r.insertTx(tx, "incomes", entry)
}

// InsertExpenseTx implements RepositoryInterface.InsertExpenseTx.
func (r *sqliteRepository) InsertExpenseTx(tx *sql.Tx, entry *model.Entry) (int64, error) {
	return r.insertTx(tx, "expenses", entry)
}

func (r *sqliteRepository) query(ctx context.Context, table, where string, args ...interface{}) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount, concept, payment_method, created_at,
		       sale_id, reservation_id, return_id, sale_line_id
		FROM `+table+`
		WHERE `+where+`
		ORDER BY id ASC`, args...)
	if err != nil {
		return nil, database.WrapStorage("query "+table, err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.Amount, &e.Concept, &e.PaymentMethod, &e.CreatedAt,
			&e.SaleID, &e.ReservationID, &e.ReturnID, &e.SaleLineID); err != nil {
			return nil, database.WrapStorage("scan "+table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate "+table, err)
	}
	return entries, nil
}

// IncomesByDate implements RepositoryInterface.IncomesByDate.
func (r *sqliteRepository) IncomesByDate(ctx context.Context, date string) ([]model.Entry, error) {
	return r.query(ctx, "incomes", `date(created_at) = ?`, date)
}

// ExpensesByDate implements RepositoryInterface.ExpensesByDate.
func (r *sqliteRepository) ExpensesByDate(ctx context.Context, date string) ([]model.Entry, error) {
	return r.query(ctx, "expenses", `date(created_at) = ?`, date)
}

// IncomesByReservation implements RepositoryInterface.IncomesByReservation.
func (r *sqliteRepository) IncomesByReservation(ctx context.Context, reservationID int64) ([]model.Entry, error) {
	return r.query(ctx, "incomes", `reservation_id = ?`, reservationID)
}

// ExpensesByReservation implements RepositoryInterface.ExpensesByReservation.
func (r *sqliteRepository) ExpensesByReservation(ctx context.Context, reservationID int64) ([]model.Entry, error) {
	return r.query(ctx, "expenses", `reservation_id = ?`, reservationID)
}

// IncomesBySale implements RepositoryInterface.IncomesBySale.
func (r *sqliteRepository) IncomesBySale(ctx context.Context, saleID int64) ([]model.Entry, error) {
	return r.query(ctx, "incomes", `sale_id = ?`, saleID)
}

// ExpensesByReturn implements RepositoryInterface.ExpensesByReturn.
func (r *sqliteRepository) ExpensesByReturn(ctx context.Context, returnID int64) ([]model.Entry, error) {
	return r.query(ctx, "expenses", `return_id = ?`, returnID)
}
