package service

import (
	"context"

	"libreria-backend/internal/domains/sale/model"
)

// ServiceInterface defines the immediate-sale operations.
type ServiceInterface interface {
	// CreateSale runs a complete sale in one transaction: stock is
	// consumed for book-backed items, the sale and its lines are written,
	// and one linked income is posted. Returns the sale id.
	CreateSale(ctx context.Context, req model.CreateSaleRequest) (int64, error)

	// Get returns a sale with its lines.
	Get(ctx context.Context, id int64) (*model.Sale, error)

	// ListByDate returns the sales of a YYYY-MM-DD day.
	ListByDate(ctx context.Context, date string) ([]model.Sale, error)
}
