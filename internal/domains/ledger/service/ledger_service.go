package service

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/ledger/model"
	"libreria-backend/internal/domains/ledger/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/pkg/database"
)

type ledgerService struct {
	db   *infraDB.DB
	repo repository.RepositoryInterface
}

// NewLedgerService creates the ledger service.
func NewLedgerService(db *infraDB.DB, repo repository.RepositoryInterface) ServiceInterface {
	return &ledgerService{db: db, repo: repo}
}

// PostIncome implements ServiceInterface.PostIncome.
func (s *ledgerService) PostIncome(ctx context.Context, req model.PostEntryRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entry := &model.Entry{
		Amount:        req.Amount,
		Concept:       req.Concept,
		PaymentMethod: req.PaymentMethod,
	}
	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		return s.repo.InsertIncomeTx(tx, entry)
	})
}

// PostExpense implements ServiceInterface.PostExpense.
func (s *ledgerService) PostExpense(ctx context.Context, req model.PostEntryRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entry := &model.Entry{
		Amount:        req.Amount,
		Concept:       req.Concept,
		PaymentMethod: req.PaymentMethod,
	}
	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		return s.repo.InsertExpenseTx(tx, entry)
	})
}

// Statement implements ServiceInterface.Statement.
func (s *ledgerService) Statement(ctx context.Context, date string) (*model.DayStatement, error) {
	if err := model.ValidateDate(date); err != nil {
		return nil, err
	}

	incomes, err := s.repo.IncomesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ExpensesByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	st := &model.DayStatement{
		Date:     date,
		Incomes:  incomes,
		Expenses: expenses,
		ByMethod: make(map[string]*model.Method),
	}
	for _, e := range incomes {
		st.TotalIncome += e.Amount
		st.ForMethod(e.PaymentMethod).Income += e.Amount
	}
	for _, e := range expenses {
		st.TotalExpense += e.Amount
		st.ForMethod(e.PaymentMethod).Expense += e.Amount
	}
	st.Net = st.TotalIncome - st.TotalExpense

	return st, nil
}
