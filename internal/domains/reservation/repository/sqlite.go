package repository

import (
	"context"
	"database/sql"
	"errors"

	"libreria-backend/internal/domains/reservation/model"
	saleModel "libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the reservation repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// InsertTx implements RepositoryInterface.InsertTx.
func (r *sqliteRepository) InsertTx(tx *sql.Tx, reservation *model.Reservation) (int64, error) {
	now := database.Now()
	if reservation.CreatedAt == "" {
		reservation.CreatedAt = now
	}
	if reservation.UpdatedAt == "" {
		reservation.UpdatedAt = now
	}

	res, err := tx.Exec(`
		INSERT INTO reservations (client_id, total_amount, paid_amount, state, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reservation.ClientID,
		reservation.TotalAmount,
		reservation.PaidAmount,
		reservation.State,
		reservation.Note,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		return 0, database.WrapStorage("insert reservation", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert reservation", err)
	}
	reservation.ID = id
	return id, nil
}

// InsertLineTx implements RepositoryInterface.InsertLineTx.
func (r *sqliteRepository) InsertLineTx(tx *sql.Tx, reservationID int64, item saleModel.LineItem) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO reservation_lines (reservation_id, book_identifier, description, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)`,
		reservationID, nullable(item.Identifier), nullable(item.Description), item.Quantity, item.UnitPrice)
	if err != nil {
		return 0, database.WrapStorage("insert reservation line", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert reservation line", err)
	}
	return id, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

const reservationColumns = `id, client_id, total_amount, paid_amount, state, note, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.TotalAmount,
		&res.PaidAmount,
		&res.State,
		&res.Note,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrReservationNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("scan reservation", err)
	}
	return &res, nil
}

// Get implements RepositoryInterface.Get.
func (r *sqliteRepository) Get(ctx context.Context, id int64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, err
	}

	lines, err := r.linesFor(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	res.Lines = lines
	return res, nil
}

// GetTx implements RepositoryInterface.GetTx.
func (r *sqliteRepository) GetTx(tx *sql.Tx, id int64) (*model.Reservation, error) {
	row := tx.QueryRow(
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(lineQuery, id)
	if err != nil {
		return nil, database.WrapStorage("list reservation lines", err)
	}
	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}
	res.Lines = lines
	return res, nil
}

// UpdatePaymentTx implements RepositoryInterface.UpdatePaymentTx.
func (r *sqliteRepository) UpdatePaymentTx(tx *sql.Tx, id int64, paidAmount int, state string) error {
	res, err := tx.Exec(`
		UPDATE reservations
		SET paid_amount = ?, state = ?, updated_at = ?
		WHERE id = ?`,
		paidAmount, state, database.Now(), id)
	if err != nil {
		return database.WrapStorage("update reservation payment", err)
	}
	return checkFound(res)
}

// UpdateStateTx implements RepositoryInterface.UpdateStateTx.
func (r *sqliteRepository) UpdateStateTx(tx *sql.Tx, id int64, state string) error {
	res, err := tx.Exec(`
		UPDATE reservations
		SET state = ?, updated_at = ?
		WHERE id = ?`,
		state, database.Now(), id)
	if err != nil {
		return database.WrapStorage("update reservation state", err)
	}
	return checkFound(res)
}

func checkFound(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return database.WrapStorage("update reservation", err)
	}
	if affected == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

// ListActive implements RepositoryInterface.ListActive.
func (r *sqliteRepository) ListActive(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE state = ? ORDER BY id ASC`,
		model.StatePending)
	if err != nil {
		return nil, database.WrapStorage("list active reservations", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate reservations", err)
	}

	for i := range reservations {
		lines, err := r.linesFor(ctx, reservations[i].ID)
		if err != nil {
			return nil, err
		}
		reservations[i].Lines = lines
	}
	return reservations, nil
}

const lineQuery = `
	SELECT id, reservation_id, book_identifier, description, quantity, unit_price
	FROM reservation_lines
	WHERE reservation_id = ?
	ORDER BY id ASC`

func (r *sqliteRepository) linesFor(ctx context.Context, reservationID int64) ([]model.Line, error) {
	rows, err := r.db.QueryContext(ctx, lineQuery, reservationID)
	if err != nil {
		return nil, database.WrapStorage("list reservation lines", err)
	}
	return scanLines(rows)
}

func scanLines(rows *sql.Rows) ([]model.Line, error) {
	defer rows.Close()

	var lines []model.Line
	for rows.Next() {
		var l model.Line
		if err := rows.Scan(&l.ID, &l.ReservationID, &l.BookIdentifier, &l.Description, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, database.WrapStorage("scan reservation line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate reservation lines", err)
	}
	return lines, nil
}
