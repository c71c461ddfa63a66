package database

import "context"

// schema is the declarative table list. Every statement is idempotent so
// Bootstrap can run on every startup.
//
// Historical rows (sale_lines, reservation_lines, return_lines, ledger
// links) reference books by identifier string on purpose, with no foreign
/// key: purging a book must not erase the history of its sales.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		identifier  TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		author      TEXT NOT NULL DEFAULT '',
		publisher   TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		categories  TEXT NOT NULL DEFAULT '',
		price       INTEGER NOT NULL CHECK (price >= 1000)
	)`,

	`CREATE TABLE IF NOT EXISTS inventory (
		book_identifier TEXT NOT NULL,
		position        TEXT NOT NULL,
		quantity        INTEGER NOT NULL CHECK (quantity >= 1),
		acquired_at     TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		PRIMARY KEY (book_identifier, position)
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id    INTEGER NOT NULL,
		total_amount INTEGER NOT NULL,
		paid_amount  INTEGER NOT NULL DEFAULT 0,
		state        TEXT NOT NULL DEFAULT 'PENDING',
		note         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		CHECK (paid_amount >= 0 AND paid_amount <= total_amount)
	)`,

	`CREATE TABLE IF NOT EXISTS reservation_lines (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		reservation_id  INTEGER NOT NULL,
		book_identifier TEXT,
		description     TEXT,
		quantity        INTEGER NOT NULL CHECK (quantity >= 1),
		unit_price      INTEGER NOT NULL CHECK (unit_price >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id    INTEGER,
		total_amount INTEGER NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sale_lines (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		sale_id         INTEGER NOT NULL,
		book_identifier TEXT,
		description     TEXT,
		quantity        INTEGER NOT NULL CHECK (quantity >= 1),
		unit_price      INTEGER NOT NULL CHECK (unit_price >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS returns (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		total_amount INTEGER NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS return_lines (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		return_id       INTEGER NOT NULL,
		book_identifier TEXT,
		description     TEXT,
		quantity        INTEGER NOT NULL CHECK (quantity >= 1),
		unit_price      INTEGER NOT NULL CHECK (unit_price >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS incomes (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		amount         INTEGER NOT NULL CHECK (amount > 0),
		concept        TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		sale_id        INTEGER,
		reservation_id INTEGER,
		return_id      INTEGER,
		sale_line_id   INTEGER
	)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		amount         INTEGER NOT NULL CHECK (amount > 0),
		concept        TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		sale_id        INTEGER,
		reservation_id INTEGER,
		return_id      INTEGER,
		sale_line_id   INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_inventory_book ON inventory (book_identifier)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_state ON reservations (state)`,
	`CREATE INDEX IF NOT EXISTS idx_reservation_lines_reservation ON reservation_lines (reservation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created ON sales (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_sale ON sale_lines (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_book ON sale_lines (book_identifier)`,
	`CREATE INDEX IF NOT EXISTS idx_return_lines_return ON return_lines (return_id)`,
	`CREATE INDEX IF NOT EXISTS idx_incomes_created ON incomes (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_incomes_reservation ON incomes (reservation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_incomes_sale ON incomes (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_created ON expenses (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_reservation ON expenses (reservation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_return ON expenses (return_id)`,
}

// Bootstrap creates every table and index that does not exist yet.
func Bootstrap(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return WrapStorage("bootstrap schema", err)
		}
	}
	return nil
}
