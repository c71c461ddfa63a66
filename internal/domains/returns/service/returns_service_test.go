package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/internal/config"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/returns/model"
	"libreria-backend/internal/domains/returns/repository"
	saleModel "libreria-backend/internal/domains/sale/model"
	saleRepo "libreria-backend/internal/domains/sale/repository"
	"libreria-backend/internal/infrastructure/database"
	txdb "libreria-backend/pkg/database"
)

const testBook = "9781111111111"

type fixture struct {
	db      *database.DB
	svc     ServiceInterface
	sales   saleRepo.RepositoryInterface
	ledgers ledgerRepo.RepositoryInterface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", BusyTimeout: 5000})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db))

	sales := saleRepo.NewRepository(db)
	ledgers := ledgerRepo.NewRepository(db)
	svc := NewReturnsService(db, repository.NewRepository(db), invRepo.NewRepository(db), sales, ledgers)
	return &fixture{db: db, svc: svc, sales: sales, ledgers: ledgers}
}

// sellBackdated writes a sale of one unit of the test book, dated
// daysAgo days in the past.
func (f *fixture) sellBackdated(t *testing.T, daysAgo int) {
	t.Helper()
	createdAt := time.Now().AddDate(0, 0, -daysAgo).Format(database.TimestampLayout)
	err := txdb.WithTransaction(context.Background(), f.db, func(tx *sql.Tx) error {
		sale := &saleModel.Sale{TotalAmount: 15000, CreatedAt: createdAt}
		saleID, err := f.sales.InsertSaleTx(tx, sale)
		if err != nil {
			return err
		}
		_, err = f.sales.InsertLineTx(tx, saleID, saleModel.LineItem{
			Identifier: testBook,
			Quantity:   1,
			UnitPrice:  15000,
		})
		return err
	})
	require.NoError(t, err)
}

func (f *fixture) stockFor(t *testing.T) int {
	t.Helper()
	var q int
	err := f.db.QueryRow(`SELECT COALESCE(SUM(quantity), 0) FROM inventory
		WHERE book_identifier = ?`, testBook).Scan(&q)
	require.NoError(t, err)
	return q
}

func TestProcessReturn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sellBackdated(t, 0)

	id, err := f.svc.ProcessReturn(ctx, model.ProcessReturnRequest{
		Items: []saleModel.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
		},
		TotalAmount:   15000,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	ret, err := f.svc.GetReturn(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 15000, ret.TotalAmount)
	require.Len(t, ret.Lines, 1)
	require.NotNil(t, ret.Lines[0].BookIdentifier)
	assert.Equal(t, testBook, *ret.Lines[0].BookIdentifier)

	// The returned copy flows back into stock.
	assert.Equal(t, 1, f.stockFor(t))

	expenses, err := f.ledgers.ExpensesByReturn(ctx, id)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 15000, expenses[0].Amount)
}

func TestReturnWindowBoundary(t *testing.T) {
	req := model.ProcessReturnRequest{
		Items: []saleModel.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
		},
		TotalAmount:   15000,
		PaymentMethod: "cash",
	}

	t.Run(fmt.Sprintf("sold %d days ago is eligible", model.ReturnWindowDays), func(t *testing.T) {
		f := newFixture(t)
		f.sellBackdated(t, model.ReturnWindowDays)

		_, err := f.svc.ProcessReturn(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run(fmt.Sprintf("sold %d days ago is not", model.ReturnWindowDays+1), func(t *testing.T) {
		f := newFixture(t)
		f.sellBackdated(t, model.ReturnWindowDays+1)

		_, err := f.svc.ProcessReturn(context.Background(), req)
		require.Error(t, err)
		assert.True(t, model.IsIneligibleError(err))

		// Nothing was written.
		assert.Equal(t, 0, f.stockFor(t))
		var returns int
		require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM returns`).Scan(&returns))
		assert.Equal(t, 0, returns)
	})
}

func TestGenericLineNeedsNoSaleRecord(t *testing.T) {
	f := newFixture(t)

	id, err := f.svc.ProcessReturn(context.Background(), model.ProcessReturnRequest{
		Items: []saleModel.LineItem{
			{Description: "Bookmark", Quantity: 1, UnitPrice: 2000},
		},
		TotalAmount:   2000,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	// Generic items never touch inventory.
	assert.Equal(t, 0, f.stockFor(t))
}

func TestZeroTotalPostsNoExpense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sellBackdated(t, 1)

	id, err := f.svc.ProcessReturn(ctx, model.ProcessReturnRequest{
		Items: []saleModel.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
		},
		TotalAmount:   0,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	expenses, err := f.ledgers.ExpensesByReturn(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	assert.Equal(t, 1, f.stockFor(t))
}

func TestGetReturnNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetReturn(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrReturnNotFound)
}
