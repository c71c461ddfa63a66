package service

import (
	"context"

	"libreria-backend/internal/domains/client/model"
)

// ServiceInterface defines the client directory operations.
type ServiceInterface interface {
	// FindOrCreate resolves (name, phone) to a client. When the phone is
	// already bound to a different name it reports a conflict with the
	// existing name and creates nothing; the caller decides how to
	// proceed.
	FindOrCreate(ctx context.Context, req model.FindOrCreateRequest) (*model.Resolution, error)

	// Get returns a client by id.
	Get(ctx context.Context, id int64) (*model.Client, error)
}
