package service

import (
	"context"

	"libreria-backend/internal/domains/returns/model"
)

// ServiceInterface defines return operations.
type ServiceInterface interface {
	// ProcessReturn checks every book-backed item against the return
	// window, then atomically records the return, puts the stock back and
	// posts the refund expense. Returns the new return id.
	ProcessReturn(ctx context.Context, req model.ProcessReturnRequest) (int64, error)

	// GetReturn returns a processed return with its lines.
	GetReturn(ctx context.Context, id int64) (*model.Return, error)
}
