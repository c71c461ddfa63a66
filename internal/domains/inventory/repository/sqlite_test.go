package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/internal/config"
	"libreria-backend/internal/domains/inventory/model"
	"libreria-backend/internal/infrastructure/database"
)

const testBook = "9781111111111"

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", BusyTimeout: 5000})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db))
	return db
}

// inTx runs fn in a committed transaction so repository Tx methods can be
// exercised directly.
func inTx(t *testing.T, db *database.DB, fn func(tx *sql.Tx) error) error {
	t.Helper()
	tx, err := db.Begin()
	require.NoError(t, err)
	if err := fn(tx); err != nil {
		require.NoError(t, tx.Rollback())
		return err
	}
	require.NoError(t, tx.Commit())
	return nil
}

func quantityAt(t *testing.T, db *database.DB, position string) int {
	t.Helper()
	var q int
	err := db.QueryRow(`SELECT quantity FROM inventory WHERE book_identifier = ? AND position = ?`,
		testBook, position).Scan(&q)
	if err == sql.ErrNoRows {
		return 0
	}
	require.NoError(t, err)
	return q
}

func TestAddRemoveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	err := inTx(t, db, func(tx *sql.Tx) error {
		q, err := repo.AddOneTx(tx, testBook, "01A")
		require.NoError(t, err)
		assert.Equal(t, 1, q)
		return nil
	})
	require.NoError(t, err)

	err = inTx(t, db, func(tx *sql.Tx) error {
		q, err := repo.RemoveOneTx(tx, testBook, "01A")
		require.NoError(t, err)
		assert.Equal(t, 0, q)
		return nil
	})
	require.NoError(t, err)

	// The row is gone, not zeroed.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM inventory`).Scan(&count))
	assert.Equal(t, 0, count)

	// A second removal finds nothing.
	err = inTx(t, db, func(tx *sql.Tx) error {
		_, err := repo.RemoveOneTx(tx, testBook, "01A")
		return err
	})
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestAddOneAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	for want := 1; want <= 3; want++ {
		err := inTx(t, db, func(tx *sql.Tx) error {
			q, err := repo.AddOneTx(tx, testBook, "01A")
			require.NoError(t, err)
			assert.Equal(t, want, q)
			return nil
		})
		require.NoError(t, err)
	}

	total, err := repo.TotalFor(context.Background(), testBook)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestMove(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	seed := func(position string, quantity int) {
		_, err := db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
			VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`, testBook, position, quantity)
		require.NoError(t, err)
	}

	t.Run("relabels when target is empty", func(t *testing.T) {
		seed("01A", 2)
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.MoveTx(tx, testBook, "01A", "02B")
		})
		require.NoError(t, err)
		assert.Equal(t, 0, quantityAt(t, db, "01A"))
		assert.Equal(t, 2, quantityAt(t, db, "02B"))
	})

	t.Run("merges into an existing target", func(t *testing.T) {
		seed("03C", 1)
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.MoveTx(tx, testBook, "03C", "02B")
		})
		require.NoError(t, err)
		assert.Equal(t, 0, quantityAt(t, db, "03C"))
		assert.Equal(t, 3, quantityAt(t, db, "02B"))
	})

	t.Run("same position is a no-op", func(t *testing.T) {
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.MoveTx(tx, testBook, "02B", "02B")
		})
		require.NoError(t, err)
		assert.Equal(t, 3, quantityAt(t, db, "02B"))
	})

	t.Run("missing source fails", func(t *testing.T) {
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.MoveTx(tx, testBook, "77G", "02B")
		})
		assert.ErrorIs(t, err, model.ErrEntryNotFound)
	})
}

func TestConsumeDrainsLargestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	seed := func(position string, quantity int) {
		_, err := db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
			VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`, testBook, position, quantity)
		require.NoError(t, err)
	}
	seed("01A", 1)
	seed("02B", 4)
	seed("03C", 2)

	err := inTx(t, db, func(tx *sql.Tx) error {
		return repo.ConsumeTx(tx, testBook, 5)
	})
	require.NoError(t, err)

	// 02B (4) drains first, then 03C loses 1.
	assert.Equal(t, 0, quantityAt(t, db, "02B"))
	assert.Equal(t, 1, quantityAt(t, db, "03C"))
	assert.Equal(t, 1, quantityAt(t, db, "01A"))
}

func TestConsumeInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	_, err := db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
		VALUES (?, '01A', 2, '2026-01-01', '2026-01-01')`, testBook)
	require.NoError(t, err)

	err = inTx(t, db, func(tx *sql.Tx) error {
		return repo.ConsumeTx(tx, testBook, 3)
	})
	require.Error(t, err)
	assert.True(t, model.IsInsufficientStockError(err))

	// Nothing was drained before the shortfall was detected.
	assert.Equal(t, 2, quantityAt(t, db, "01A"))
}

func TestRestorePositions(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	seed := func(position string, quantity int) {
		_, err := db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
			VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`, testBook, position, quantity)
		require.NoError(t, err)
	}

	t.Run("smallest position wins for cancellations", func(t *testing.T) {
		seed("05E", 1)
		seed("02B", 3)
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.RestoreSmallestTx(tx, testBook, 2)
		})
		require.NoError(t, err)
		assert.Equal(t, 5, quantityAt(t, db, "02B"))
		assert.Equal(t, 1, quantityAt(t, db, "05E"))
	})

	t.Run("largest quantity wins for returns", func(t *testing.T) {
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.RestoreLargestTx(tx, testBook, 1)
		})
		require.NoError(t, err)
		assert.Equal(t, 6, quantityAt(t, db, "02B"))
	})

	t.Run("falls back to the sentinel with no entries", func(t *testing.T) {
		other := "9782222222222"
		err := inTx(t, db, func(tx *sql.Tx) error {
			return repo.RestoreLargestTx(tx, other, 2)
		})
		require.NoError(t, err)

		var q int
		require.NoError(t, db.QueryRow(`SELECT quantity FROM inventory WHERE book_identifier = ? AND position = ?`,
			other, model.PositionUnshelved).Scan(&q))
		assert.Equal(t, 2, q)
	})
}

func TestDeleteAllFor(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	for _, p := range []string{"01A", "02B", "03C"} {
		_, err := db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
			VALUES (?, ?, 1, '2026-01-01', '2026-01-01')`, testBook, p)
		require.NoError(t, err)
	}

	var removed int
	err := inTx(t, db, func(tx *sql.Tx) error {
		var err error
		removed, err = repo.DeleteAllForTx(tx, testBook)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	total, err := repo.TotalFor(context.Background(), testBook)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
