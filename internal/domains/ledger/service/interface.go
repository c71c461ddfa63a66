package service

import (
	"context"

	"libreria-backend/internal/domains/ledger/model"
)

// ServiceInterface defines the ledger operations offered to the GUI.
// Sale, reservation and return postings do not go through here; those
// services append linked entries inside their own transactions.
type ServiceInterface interface {
	// PostIncome appends a manual income and returns its id.
	PostIncome(ctx context.Context, req model.PostEntryRequest) (int64, error)

	// PostExpense appends a manual expense and returns its id.
	PostExpense(ctx context.Context, req model.PostEntryRequest) (int64, error)

	// Statement aggregates one YYYY-MM-DD day into the daily cash
	// statement.
	Statement(ctx context.Context, date string) (*model.DayStatement, error)
}
