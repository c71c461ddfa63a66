package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the sale repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// InsertSaleTx implements RepositoryInterface.InsertSaleTx.
func (r *sqliteRepository) InsertSaleTx(tx *sql.Tx, sale *model.Sale) (int64, error) {
	if sale.CreatedAt == "" {
		sale.CreatedAt = database.Now()
	}

	res, err := tx.Exec(`
		INSERT INTO sales (client_id, total_amount, note, created_at)
		VALUES (?, ?, ?, ?)`,
		sale.ClientID, sale.TotalAmount, sale.Note, sale.CreatedAt)
	if err != nil {
		return 0, database.WrapStorage("insert sale", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert sale", err)
	}
	sale.ID = id
	return id, nil
}

// InsertLineTx implements RepositoryInterface.InsertLineTx.
func (r *sqliteRepository) InsertLineTx(tx *sql.Tx, saleID int64, item model.LineItem) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO sale_lines (sale_id, book_identifier, description, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)`,
		saleID, nullable(item.Identifier), nullable(item.Description), item.Quantity, item.UnitPrice)
	if err != nil {
		return 0, database.WrapStorage("insert sale line", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert sale line", err)
	}
	return id, nil
}

// nullable maps an empty string to NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Get implements RepositoryInterface.Get.
func (r *sqliteRepository) Get(ctx context.Context, id int64) (*model.Sale, error) {
	var s model.Sale
	err := r.db.QueryRowContext(ctx, `
		SELECT id, client_id, total_amount, note, created_at
		FROM sales WHERE id = ?`, id).
		Scan(&s.ID, &s.ClientID, &s.TotalAmount, &s.Note, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSaleNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("get sale", err)
	}

	lines, err := r.linesFor(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

// ListByDate implements RepositoryInterface.ListByDate.
func (r *sqliteRepository) ListByDate(ctx context.Context, date string) ([]model.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, total_amount, note, created_at
		FROM sales
		WHERE date(created_at) = ?
		ORDER BY id ASC`, date)
	if err != nil {
		return nil, database.WrapStorage("list sales", err)
	}
	defer rows.Close()

	var sales []model.Sale
	for rows.Next() {
		var s model.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.TotalAmount, &s.Note, &s.CreatedAt); err != nil {
			return nil, database.WrapStorage("scan sale", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate sales", err)
	}

	for i := range sales {
		lines, err := r.linesFor(ctx, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Lines = lines
	}
	return sales, nil
}

func (r *sqliteRepository) linesFor(ctx context.Context, saleID int64) ([]model.Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sale_id, book_identifier, description, quantity, unit_price
		FROM sale_lines
		WHERE sale_id = ?
		ORDER BY id ASC`, saleID)
	if err != nil {
		return nil, database.WrapStorage("list sale lines", err)
	}
	defer rows.Close()

	var lines []model.Line
	for rows.Next() {
		var l model.Line
		if err := rows.Scan(&l.ID, &l.SaleID, &l.BookIdentifier, &l.Description, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, database.WrapStorage("scan sale line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate sale lines", err)
	}
	return lines, nil
}

// SoldWithin implements RepositoryInterface.SoldWithin. The comparison is
// on dates, inclusive at the boundary: a sale exactly `days` days old
// still qualifies.
func (r *sqliteRepository) SoldWithin(ctx context.Context, identifier string, days int) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM sale_lines sl
			JOIN sales s ON s.id = sl.sale_id
			WHERE sl.book_identifier = ?
			  AND date(s.created_at) >= date('now', 'localtime', ?)
		)`, identifier, fmt.Sprintf("-%d days", days)).Scan(&exists)
	if err != nil {
		return false, database.WrapStorage("check sale window", err)
	}
	return exists == 1, nil
}
