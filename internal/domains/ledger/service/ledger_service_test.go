package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/internal/config"
	"libreria-backend/internal/domains/ledger/model"
	"libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/infrastructure/database"
)

func newTestService(t *testing.T) ServiceInterface {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", BusyTimeout: 5000})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db))
	return NewLedgerService(db, repository.NewRepository(db))
}

func TestPostEntries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	incomeID, err := svc.PostIncome(ctx, model.PostEntryRequest{
		Amount: 30000, Concept: "Opening float", PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.NotZero(t, incomeID)

	expenseID, err := svc.PostExpense(ctx, model.PostEntryRequest{
		Amount: 5000, Concept: "Cleaning supplies", PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.NotZero(t, expenseID)
}

func TestPostEntryValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.PostIncome(ctx, model.PostEntryRequest{Amount: 0, Concept: "x", PaymentMethod: "cash"})
	assert.Error(t, err)

	_, err = svc.PostExpense(ctx, model.PostEntryRequest{Amount: -5, Concept: "x", PaymentMethod: "cash"})
	assert.Error(t, err)

	_, err = svc.PostIncome(ctx, model.PostEntryRequest{Amount: 100, Concept: "", PaymentMethod: "cash"})
	assert.Error(t, err)
}

func TestStatementAggregation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.PostIncome(ctx, model.PostEntryRequest{Amount: 30000, Concept: "Sale", PaymentMethod: "cash"})
	require.NoError(t, err)
	_, err = svc.PostIncome(ctx, model.PostEntryRequest{Amount: 12000, Concept: "Sale", PaymentMethod: "card"})
	require.NoError(t, err)
	_, err = svc.PostExpense(ctx, model.PostEntryRequest{Amount: 5000, Concept: "Supplies", PaymentMethod: "cash"})
	require.NoError(t, err)

	today := time.Now().Format(database.DateLayout)
	st, err := svc.Statement(ctx, today)
	require.NoError(t, err)

	assert.Equal(t, 42000, st.TotalIncome)
	assert.Equal(t, 5000, st.TotalExpense)
	assert.Equal(t, 37000, st.Net)
	assert.Len(t, st.Incomes, 2)
	assert.Len(t, st.Expenses, 1)

	require.Contains(t, st.ByMethod, "cash")
	require.Contains(t, st.ByMethod, "card")
	assert.Equal(t, 30000, st.ByMethod["cash"].Income)
	assert.Equal(t, 5000, st.ByMethod["cash"].Expense)
	assert.Equal(t, 12000, st.ByMethod["card"].Income)
}

func TestStatementRejectsBadDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Statement(context.Background(), "01-02-2026")
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}
