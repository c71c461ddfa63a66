package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/internal/config"
	clientModel "libreria-backend/internal/domains/client/model"
	clientRepo "libreria-backend/internal/domains/client/repository"
	clientService "libreria-backend/internal/domains/client/service"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/reservation/model"
	"libreria-backend/internal/domains/reservation/repository"
	saleModel "libreria-backend/internal/domains/sale/model"
	saleRepo "libreria-backend/internal/domains/sale/repository"
	"libreria-backend/internal/infrastructure/database"
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
	svc := NewReservationService(
		db,
		repository.NewRepository(db),
		clientService.NewClientService(clientRepo.NewRepository(db)),
		invRepo.NewRepository(db),
		sales,
		ledgers,
	)
	return &fixture{db: db, svc: svc, sales: sales, ledgers: ledgers}
}

func (f *fixture) seedStock(t *testing.T, position string, quantity int) {
	t.Helper()
	_, err := f.db.Exec(`INSERT INTO inventory (book_identifier, position, quantity, acquired_at, updated_at)
		VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`, testBook, position, quantity)
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

func (f *fixture) open(t *testing.T, deposit, total int) int64 {
	t.Helper()
	id, err := f.svc.Create(context.Background(), model.CreateReservationRequest{
		ClientName:  "Ana",
		ClientPhone: "555",
		Items: []saleModel.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: total},
		},
		TotalAmount:    total,
		InitialDeposit: deposit,
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)
	return id
}

func TestReservationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 3)

	id := f.open(t, 5000, 15000)

	// Stock is consumed at creation.
	assert.Equal(t, 2, f.stockFor(t))

	details, err := f.svc.Details(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatePending, details.State)
	assert.Equal(t, 5000, details.PaidAmount)
	assert.Equal(t, "Ana", details.Client.Name)

	incomes, err := f.ledgers.IncomesByReservation(ctx, id)
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, 5000, incomes[0].Amount)

	res, err := f.svc.AddDeposit(ctx, id, model.DepositRequest{Amount: 3000, PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 8000, res.PaidAmount)
	assert.Equal(t, model.StatePending, res.State)

	saleID, err := f.svc.ConvertToSale(ctx, id, model.ConvertRequest{
		FinalPayment:  7000,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// Conversion never touches inventory again.
	assert.Equal(t, 2, f.stockFor(t))

	details, err = f.svc.Details(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateCompleted, details.State)
	assert.Equal(t, 15000, details.PaidAmount)

	// The sale mirrors the reservation lines.
	sale, err := f.sales.Get(ctx, saleID)
	require.NoError(t, err)
	assert.Equal(t, 15000, sale.TotalAmount)
	require.Len(t, sale.Lines, 1)
	require.NotNil(t, sale.Lines[0].BookIdentifier)
	assert.Equal(t, testBook, *sale.Lines[0].BookIdentifier)

	saleIncomes, err := f.ledgers.IncomesBySale(ctx, saleID)
	require.NoError(t, err)
	require.Len(t, saleIncomes, 1)
	assert.Equal(t, 7000, saleIncomes[0].Amount)
	assert.Equal(t, "card", saleIncomes[0].PaymentMethod)
}

func TestCancelWithRefund(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 3)
	id := f.open(t, 5000, 15000)
	require.Equal(t, 2, f.stockFor(t))

	require.NoError(t, f.svc.Cancel(ctx, id, true))

	// Stock flows back and the paid amount is refunded as an expense.
	assert.Equal(t, 3, f.stockFor(t))

	details, err := f.svc.Details(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateCancelled, details.State)

	expenses, err := f.ledgers.ExpensesByReservation(ctx, id)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 5000, expenses[0].Amount)
	assert.Equal(t, "cash", expenses[0].PaymentMethod)
}

func TestCancelWithoutRefund(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 1)
	id := f.open(t, 5000, 15000)

	require.NoError(t, f.svc.Cancel(ctx, id, false))

	assert.Equal(t, 1, f.stockFor(t))
	expenses, err := f.ledgers.ExpensesByReservation(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestTerminalStateIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 2)
	id := f.open(t, 5000, 15000)
	require.NoError(t, f.svc.Cancel(ctx, id, false))

	_, err := f.svc.AddDeposit(ctx, id, model.DepositRequest{Amount: 1000, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, model.ErrNotPending)

	_, err = f.svc.ConvertToSale(ctx, id, model.ConvertRequest{FinalPayment: 10000, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, model.ErrNotPending)

	err = f.svc.Cancel(ctx, id, false)
	assert.ErrorIs(t, err, model.ErrNotPending)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("zero deposit", func(t *testing.T) {
		_, err := f.svc.Create(ctx, model.CreateReservationRequest{
			ClientName:  "Ana",
			ClientPhone: "555",
			Items: []saleModel.LineItem{
				{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
			},
			TotalAmount:   15000,
			PaymentMethod: "cash",
		})
		assert.ErrorIs(t, err, model.ErrInvalidDeposit)
	})

	t.Run("deposit above total", func(t *testing.T) {
		_, err := f.svc.Create(ctx, model.CreateReservationRequest{
			ClientName:  "Ana",
			ClientPhone: "555",
			Items: []saleModel.LineItem{
				{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
			},
			TotalAmount:    15000,
			InitialDeposit: 20000,
			PaymentMethod:  "cash",
		})
		assert.ErrorIs(t, err, model.ErrDepositExceedsTotal)
	})
}

func TestDepositCannotExceedTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 1)
	id := f.open(t, 5000, 15000)

	_, err := f.svc.AddDeposit(ctx, id, model.DepositRequest{Amount: 20000, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, model.ErrDepositExceedsTotal)
}

func TestConversionRequiresResidual(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 1)
	id := f.open(t, 5000, 15000)

	_, err := f.svc.ConvertToSale(ctx, id, model.ConvertRequest{
		FinalPayment:  9999,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, model.ErrInsufficientPayment)
}

func TestCreateRejectsNameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedStock(t, "01A", 2)
	f.open(t, 5000, 15000) // registers Ana at 555

	_, err := f.svc.Create(ctx, model.CreateReservationRequest{
		ClientName:  "Luis",
		ClientPhone: "555",
		Items: []saleModel.LineItem{
			{Identifier: testBook, Quantity: 1, UnitPrice: 15000},
		},
		TotalAmount:    15000,
		InitialDeposit: 5000,
		PaymentMethod:  "cash",
	})
	assert.ErrorIs(t, err, clientModel.ErrNameConflict)

	// The conflict aborts before any stock or ledger write.
	assert.Equal(t, 1, f.stockFor(t))
}
