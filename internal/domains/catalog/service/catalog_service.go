package service

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/catalog/model"
	"libreria-backend/internal/domains/catalog/repository"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/internal/shared/utils"
	"libreria-backend/pkg/database"
	"libreria-backend/pkg/logger"
)

type catalogService struct {
	db            *infraDB.DB
	repo          repository.RepositoryInterface
	inventoryRepo invRepo.RepositoryInterface
}

// NewCatalogService creates the catalog service.
func NewCatalogService(db *infraDB.DB, repo repository.RepositoryInterface, inventoryRepo invRepo.RepositoryInterface) ServiceInterface {
	return &catalogService{
		db:            db,
		repo:          repo,
		inventoryRepo: inventoryRepo,
	}
}

// Upsert implements ServiceInterface.Upsert.
func (s *catalogService) Upsert(ctx context.Context, req model.UpsertBookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	book := req.Book()
	return s.repo.Upsert(ctx, &book)
}

// Get implements ServiceInterface.Get.
func (s *catalogService) Get(ctx context.Context, identifier string) (*model.Book, error) {
	return s.repo.Get(ctx, utils.StripIdentifier(identifier))
}

// Search implements ServiceInterface.Search.
func (s *catalogService) Search(ctx context.Context, term string, filters model.SearchFilters) ([]model.BookView, error) {
	return s.repo.Search(ctx, term, filters)
}

// Purge implements ServiceInterface.Purge: stock rows first, then the book
// row, atomically.
func (s *catalogService) Purge(ctx context.Context, identifier string) error {
	id := utils.StripIdentifier(identifier)

	return database.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		removed, err := s.inventoryRepo.DeleteAllForTx(tx, id)
		if err != nil {
			return err
		}
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		logger.Info("book purged", map[string]interface{}{
			"identifier":      id,
			"entries_removed": removed,
		})
		return nil
	})
}
