package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"libreria-backend/internal/config"
	"libreria-backend/internal/shared/utils"
)

// driverName registers a sqlite3 driver variant whose connections carry the
// normalize() scalar function. Catalog search relies on it for
// accent-insensitive matching, so plain "sqlite3" must never be used.
const driverName = "sqlite3_normalize"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("normalize", utils.Normalize, true)
		},
	})
}

// Layouts for the persisted date and timestamp columns.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Now returns the current local time in the persisted timestamp format.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// DB wraps the single embedded SQLite database of the application.
type DB struct {
	*sql.DB
	Path string
}

// Open opens (creating if needed) the database file and applies the
// connection settings the core relies on: WAL journal, foreign keys,
// a busy timeout, and a single connection so writes serialize through
// one writer exactly as the GUI expects.
func Open(cfg *config.DatabaseConfig) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); cfg.Path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=%d",
		cfg.Path, cfg.BusyTimeout)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection: SQLite allows a single writer, and keeping readers on
	// the same connection gives the serializable ordering of service calls
	// the rest of the core assumes. It also makes :memory: databases safe
	// in tests.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: db, Path: cfg.Path}, nil
}
