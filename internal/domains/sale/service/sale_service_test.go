package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/internal/config"
	invModel "libreria-backend/internal/domains/inventory/model"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/domains/sale/repository"
	"libreria-backend/internal/infrastructure/database"
)

const testBook = "9781111111111"

type fixture struct {
	db      *database.DB
	svc     ServiceInterface
	ledgers ledgerRepo.RepositoryInterface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", BusyTimeout: 5000})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db))

	ledgers := ledgerRepo.NewRepository(db)
	svc := NewSaleService(db, repository.NewRepository(db), invRepo.NewRepository(db), ledgers)
	return &fixture{db: db, svc: svc, ledgers: ledgers}
}

func (f *fixture) seedStock(t *testing.T, position string, quantity int) {
	t.Helper()
	_, err := f.db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
		VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`, testBook, position, quantity)
	require.NoError(t, err)
}

func (f *fixture) stockAt(t *testing.T, position string) int {
	t.Helper()
	var q int
	err := f.db.QueryRow(`SELECT COALESCE(SUM(quantity), 0) FROM inventory
		WHERE book_identifier = ? AND position = ?`, testBook, position).Scan(&q)
	require.NoError(t, err)
	return q
}

func TestCreateSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 3)

	saleID, err := f.svc.CreateSale(ctx, model.CreateSaleRequest{
		Items: []model.LineItem{
			{Identifier: testBook, Quantity: 2, UnitPrice: 15000},
		},
		TotalAmount:   30000,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.NotZero(t, saleID)

	// Stock went down by the sold quantity.
	assert.Equal(t, 1, f.stockAt(t, "01A"))

	// One sale with one grouped line.
	sale, err := f.svc.Get(ctx, saleID)
	require.NoError(t, err)
	assert.Equal(t, 30000, sale.TotalAmount)
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, 2, sale.Lines[0].Quantity)
	require.NotNil(t, sale.Lines[0].BookIdentifier)
	assert.Equal(t, testBook, *sale.Lines[0].BookIdentifier)

	// One linked income for the full amount.
	incomes, err := f.ledgers.IncomesBySale(ctx, saleID)
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, 30000, incomes[0].Amount)
	assert.Equal(t, "cash", incomes[0].PaymentMethod)
}

func TestCreateSaleGroupsDuplicateItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 5)

	saleID, err := f.svc.CreateSale(ctx, model.CreateSaleRequest{
		Items: []model.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
			{Identifier: testBook, Quantity: 2, UnitPrice: 15000},
			{Description: "Gift wrap", Quantity: 1, UnitPrice: 2000},
		},
		TotalAmount:   47000,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	sale, err := f.svc.Get(ctx, saleID)
	require.NoError(t, err)
	require.Len(t, sale.Lines, 2)
	assert.Equal(t, 3, sale.Lines[0].Quantity)
	require.NotNil(t, sale.Lines[1].Description)
	assert.Equal(t, "Gift wrap", *sale.Lines[1].Description)

	assert.Equal(t, 2, f.stockAt(t, "01A"))
}

func TestCreateSaleInsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 2)

	_, err := f.svc.CreateSale(ctx, model.CreateSaleRequest{
		Items: []model.LineItem{
			{Identifier: testBook, Quantity: 3, UnitPrice: 15000},
		},
		TotalAmount:   45000,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.True(t, invModel.IsInsufficientStockError(err))

	// No row changes anywhere.
	assert.Equal(t, 2, f.stockAt(t, "01A"))
	var sales, incomes int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM sales`).Scan(&sales))
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM incomes`).Scan(&incomes))
	assert.Equal(t, 0, sales)
	assert.Equal(t, 0, incomes)
}

func TestCreateSaleValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateSale(ctx, model.CreateSaleRequest{
		TotalAmount: 100, PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, model.ErrNoItems)

	_, err = f.svc.CreateSale(ctx, model.CreateSaleRequest{
		Items:         []model.LineItem{{Identifier: testBook, Quantity: 0, UnitPrice: 100}},
		TotalAmount:   100,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, model.ErrInvalidLine)

	// An item must be either a book or a generic line, never both.
	_, err = f.svc.CreateSale(ctx, model.CreateSaleRequest{
		Items:         []model.LineItem{{Identifier: testBook, Description: "Disc", Quantity: 1, UnitPrice: 100}},
		TotalAmount:   100,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, model.ErrInvalidLine)
}
