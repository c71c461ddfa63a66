package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"libreria-backend/internal/domains/inventory/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the inventory repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func today() string {
	return time.Now().Format(database.DateLayout)
}

// AddOneTx implements RepositoryInterface.AddOneTx.
func (r *sqliteRepository) AddOneTx(tx *sql.Tx, identifier, position string) (int, error) {
	return r.addQuantityTx(tx, identifier, position, 1)
}

// addQuantityTx is the shared update-else-insert used by AddOneTx and the
// restore paths.
func (r *sqliteRepository) addQuantityTx(tx *sql.Tx, identifier, position string, quantity int) (int, error) {
	res, err := tx.Exec(`
		UPDATE inventory
		SET quantity = quantity + ?, updated_at = ?
		WHERE book_identifier = ? AND position = ?`,
		quantity, today(), identifier, position)
	if err != nil {
		return 0, database.WrapStorage("increment inventory", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, database.WrapStorage("increment inventory", err)
	}

	if affected == 0 {
		_, err = tx.Exec(`
			INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			identifier, position, quantity, today(), today())
		if err != nil {
			return 0, database.WrapStorage("insert inventory entry", err)
		}
		return quantity, nil
	}

	var current int
	err = tx.QueryRow(`
		SELECT quantity FROM inventory
		WHERE book_identifier = ? AND position = ?`,
		identifier, position).Scan(&current)
	if err != nil {
		return 0, database.WrapStorage("read inventory quantity", err)
	}
	return current, nil
}

// RemoveOneTx implements RepositoryInterface.RemoveOneTx.
func (r *sqliteRepository) RemoveOneTx(tx *sql.Tx, identifier, position string) (int, error) {
	var current int
	err := tx.QueryRow(`
		SELECT quantity FROM inventory
		WHERE book_identifier = ? AND position = ?`,
		identifier, position).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.ErrEntryNotFound
	}
	if err != nil {
		return 0, database.WrapStorage("read inventory quantity", err)
	}

	if current <= 1 {
		_, err = tx.Exec(`
			DELETE FROM inventory
			WHERE book_identifier = ? AND position = ?`,
			identifier, position)
		if err != nil {
			return 0, database.WrapStorage("delete inventory entry", err)
		}
		return 0, nil
	}

	_, err = tx.Exec(`
		UPDATE inventory
		SET quantity = quantity - 1, updated_at = ?
		WHERE book_identifier = ? AND position = ?`,
		today(), identifier, position)
	if err != nil {
		return 0, database.WrapStorage("decrement inventory", err)
	}
	return current - 1, nil
}

// MoveTx implements RepositoryInterface.MoveTx.
func (r *sqliteRepository) MoveTx(tx *sql.Tx, identifier, oldPosition, newPosition string) error {
	if oldPosition == newPosition {
		return nil
	}

	var moving int
	err := tx.QueryRow(`
		SELECT quantity FROM inventory
		WHERE book_identifier = ? AND position = ?`,
		identifier, oldPosition).Scan(&moving)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrEntryNotFound
	}
	if err != nil {
		return database.WrapStorage("read inventory quantity", err)
	}

	res, err := tx.Exec(`
		UPDATE inventory
		SET quantity = quantity + ?, updated_at = ?
		WHERE book_identifier = ? AND position = ?`,
		moving, today(), identifier, newPosition)
	if err != nil {
		return database.WrapStorage("merge inventory entry", err)
	}
	merged, err := res.RowsAffected()
	if err != nil {
		return database.WrapStorage("merge inventory entry", err)
	}

	if merged > 0 {
		// Target existed: the source row dissolves into it.
		_, err = tx.Exec(`
			DELETE FROM inventory
			WHERE book_identifier = ? AND position = ?`,
			identifier, oldPosition)
		if err != nil {
			return database.WrapStorage("delete merged inventory entry", err)
		}
		return nil
	}

	_, err = tx.Exec(`
		UPDATE inventory
		SET position = ?, updated_at = ?
		WHERE book_identifier = ? AND position = ?`,
		newPosition, today(), identifier, oldPosition)
	if err != nil {
		return database.WrapStorage("relabel inventory entry", err)
	}
	return nil
}

// ConsumeTx implements the shared stock-consumption routine: drain entries
// ordered by quantity desc, position asc, until the request is satisfied.
func (r *sqliteRepository) ConsumeTx(tx *sql.Tx, identifier string, quantity int) error {
	rows, err := tx.Query(`
		SELECT position, quantity FROM inventory
		WHERE book_identifier = ?
		ORDER BY quantity DESC, position ASC`,
		identifier)
	if err != nil {
		return database.WrapStorage("list inventory entries", err)
	}

	type slot struct {
		position string
		quantity int
	}
	var slots []slot
	available := 0
	for rows.Next() {
		var s slot
		if err := rows.Scan(&s.position, &s.quantity); err != nil {
			rows.Close()
			return database.WrapStorage("scan inventory entry", err)
		}
		slots = append(slots, s)
		available += s.quantity
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return database.WrapStorage("iterate inventory entries", err)
	}
	rows.Close()

	if available < quantity {
		return model.NewInsufficientStockError(identifier, quantity, available)
	}

	needed := quantity
	for _, s := range slots {
		if needed == 0 {
			break
		}
		take := needed
		if take > s.quantity {
			take = s.quantity
		}

		if take == s.quantity {
			_, err = tx.Exec(`
				DELETE FROM inventory
				WHERE book_identifier = ? AND position = ?`,
				identifier, s.position)
		} else {
			_, err = tx.Exec(`
				UPDATE inventory
				SET quantity = quantity - ?, updated_at = ?
				WHERE book_identifier = ? AND position = ?`,
				take, today(), identifier, s.position)
		}
		if err != nil {
			return database.WrapStorage("consume inventory entry", err)
		}
		needed -= take
	}

	return nil
}

// RestoreSmallestTx implements RepositoryInterface.RestoreSmallestTx.
func (r *sqliteRepository) RestoreSmallestTx(tx *sql.Tx, identifier string, quantity int) error {
	position, err := r.pickPositionTx(tx, identifier, `ORDER BY position ASC`)
	if err != nil {
		return err
	}
	_, err = r.addQuantityTx(tx, identifier, position, quantity)
	return err
}

// RestoreLargestTx implements RepositoryInterface.RestoreLargestTx.
func (r *sqliteRepository) RestoreLargestTx(tx *sql.Tx, identifier string, quantity int) error {
	position, err := r.pickPositionTx(tx, identifier, `ORDER BY quantity DESC, position ASC`)
	if err != nil {
		return err
	}
	_, err = r.addQuantityTx(tx, identifier, position, quantity)
	return err
}

func (r *sqliteRepository) pickPositionTx(tx *sql.Tx, identifier, order string) (string, error) {
	var position string
	err := tx.QueryRow(`
		SELECT position FROM inventory
		WHERE book_identifier = ? `+order+` LIMIT 1`,
		identifier).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PositionUnshelved, nil
	}
	if err != nil {
		return "", database.WrapStorage("pick restore position", err)
	}
	return position, nil
}

// DeleteAllForTx implements RepositoryInterface.DeleteAllForTx.
func (r *sqliteRepository) DeleteAllForTx(tx *sql.Tx, identifier string) (int, error) {
	res, err := tx.Exec(`DELETE FROM inventory WHERE book_identifier = ?`, identifier)
	if err != nil {
		return 0, database.WrapStorage("delete inventory entries", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, database.WrapStorage("delete inventory entries", err)
	}
	return int(affected), nil
}

// ListFor implements RepositoryInterface.ListFor.
func (r *sqliteRepository) ListFor(ctx context.Context, identifier string) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT book_identifier, position, quantity, acquired_at, updated_at
		FROM inventory
		WHERE book_identifier = ?
		ORDER BY position ASC`,
		identifier)
	if err != nil {
		return nil, database.WrapStorage("list inventory entries", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.BookIdentifier, &e.Position, &e.Quantity, &e.AcquiredAt, &e.UpdatedAt); err != nil {
			return nil, database.WrapStorage("scan inventory entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate inventory entries", err)
	}
	return entries, nil
}

// TotalFor implements RepositoryInterface.TotalFor.
func (r *sqliteRepository) TotalFor(ctx context.Context, identifier string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0) FROM inventory
		WHERE book_identifier = ?`,
		identifier).Scan(&total)
	if err != nil {
		return 0, database.WrapStorage("sum inventory", err)
	}
	return total, nil
}
