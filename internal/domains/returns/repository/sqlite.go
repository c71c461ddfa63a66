package repository

import (
	"context"
	"database/sql"
	"errors"

	"libreria-backend/internal/domains/returns/model"
	saleModel "libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the returns repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// InsertTx implements RepositoryInterface.InsertTx.
func (r *sqliteRepository) InsertTx(tx *sql.Tx, ret *model.Return) (int64, error) {
	if ret.CreatedAt == "" {
		ret.CreatedAt = database.Now()
	}

	res, err := tx.Exec(`
		INSERT INTO returns (total_amount, created_at)
		VALUES (?, ?)`,
		ret.TotalAmount, ret.CreatedAt)
	if err != nil {
		return 0, database.WrapStorage("insert return", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert return", err)
	}
	ret.ID = id
	return id, nil
}

// InsertLineTx implements RepositoryInterface.InsertLineTx.
func (r *sqliteRepository) InsertLineTx(tx *sql.Tx, returnID int64, item saleModel.LineItem) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO return_lines (return_id, book_identifier, description, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)`,
		returnID, nullable(item.Identifier), nullable(item.Description), item.Quantity, item.UnitPrice)
	if err != nil {
		return 0, database.WrapStorage("insert return line", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert return line", err)
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
func (r *sqliteRepository) Get(ctx context.Context, id int64) (*model.Return, error) {
	var ret model.Return
	err := r.db.QueryRowContext(ctx, `
		SELECT id, total_amount, created_at
		FROM returns WHERE id = ?`, id).
		Scan(&ret.ID, &ret.TotalAmount, &ret.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrReturnNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("get return", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, return_id, book_identifier, description, quantity, unit_price
		FROM return_lines
		WHERE return_id = ?
		ORDER BY id ASC`, id)
	if err != nil {
		return nil, database.WrapStorage("list return lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l model.Line
		if err := rows.Scan(&l.ID, &l.ReturnID, &l.BookIdentifier, &l.Description, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, database.WrapStorage("scan return line", err)
		}
		ret.Lines = append(ret.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate return lines", err)
	}
	return &ret, nil
}
