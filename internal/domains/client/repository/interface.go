package repository

import (
	"context"

	"libreria-backend/internal/domains/client/model"
)

// RepositoryInterface defines client directory data access.
type RepositoryInterface interface {
	// GetByPhone returns the client registered under a phone.
	// Returns model.ErrClientNotFound when no row exists.
	GetByPhone(ctx context.Context, phone string) (*model.Client, error)

	// GetByID returns a client by id.
	GetByID(ctx context.Context, id int64) (*model.Client, error)

	// Create inserts a new client and returns its id.
	Create(ctx context.Context, name, phone string) (int64, error)
}
