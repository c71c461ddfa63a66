package service

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/inventory/model"
	"libreria-backend/internal/domains/inventory/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/pkg/database"
)

type inventoryService struct {
	db   *infraDB.DB
	repo repository.RepositoryInterface
}

// NewInventoryService creates the inventory service.
func NewInventoryService(db *infraDB.DB, repo repository.RepositoryInterface) ServiceInterface {
	return &inventoryService{db: db, repo: repo}
}

// AddOne implements ServiceInterface.AddOne. The update-else-insert runs in
// one transaction so a concurrent-looking pair of clicks cannot race the
// existence check.
func (s *inventoryService) AddOne(ctx context.Context, identifier, position string) (int, error) {
	pos, err := model.NormalizePosition(position)
	if err != nil {
		return 0, err
	}

	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int, error) {
		return s.repo.AddOneTx(tx, identifier, pos)
	})
}

// RemoveOne implements ServiceInterface.RemoveOne.
func (s *inventoryService) RemoveOne(ctx context.Context, identifier, position string) (int, error) {
	pos, err := model.NormalizePosition(position)
	if err != nil {
		return 0, err
	}

	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int, error) {
		return s.repo.RemoveOneTx(tx, identifier, pos)
	})
}

// Move implements ServiceInterface.Move.
func (s *inventoryService) Move(ctx context.Context, identifier, oldPosition, newPosition string) error {
	oldPos, err := model.NormalizePosition(oldPosition)
	if err != nil {
		return err
	}
	newPos, err := model.NormalizePosition(newPosition)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		return s.repo.MoveTx(tx, identifier, oldPos, newPos)
	})
}

// ListFor implements ServiceInterface.ListFor.
func (s *inventoryService) ListFor(ctx context.Context, identifier string) ([]model.Entry, error) {
	return s.repo.ListFor(ctx, identifier)
}
