package service

import (
	"context"
	"database/sql"
	"fmt"

	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerModel "libreria-backend/internal/domains/ledger/model"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/returns/model"
	"libreria-backend/internal/domains/returns/repository"
	saleModel "libreria-backend/internal/domains/sale/model"
	saleRepo "libreria-backend/internal/domains/sale/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/pkg/database"
	"libreria-backend/pkg/logger"
)

type returnsService struct {
	db            *infraDB.DB
	repo          repository.RepositoryInterface
	inventoryRepo invRepo.RepositoryInterface
	saleRepo      saleRepo.RepositoryInterface
	ledgerRepo    ledgerRepo.RepositoryInterface
}

// NewReturnsService creates the returns service.
func NewReturnsService(
	db *infraDB.DB,
	repo repository.RepositoryInterface,
	inventoryRepo invRepo.RepositoryInterface,
	saleRepo saleRepo.RepositoryInterface,
	ledgerRepo ledgerRepo.RepositoryInterface,
) ServiceInterface {
	return &returnsService{
		db:            db,
		repo:          repo,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// ProcessReturn implements ServiceInterface.ProcessReturn.
func (s *returnsService) ProcessReturn(ctx context.Context, req model.ProcessReturnRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	items := saleModel.GroupLineItems(req.Items)

	// Eligibility runs before the transaction: an ineligible book must
	// reach the operator without any stock or ledger effect. Generic lines
	// are always accepted, they never had a sale record to match.
	for _, item := range items {
		if !item.IsBook() {
			continue
		}
		sold, err := s.saleRepo.SoldWithin(ctx, item.Identifier, model.ReturnWindowDays)
		if err != nil {
			return 0, err
		}
		if !sold {
			return 0, model.NewIneligibleError(item.Identifier)
		}
	}

	id, err := database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		ret := &model.Return{TotalAmount: req.TotalAmount}
		id, err := s.repo.InsertTx(tx, ret)
		if err != nil {
			return 0, err
		}

		for _, item := range items {
			if _, err := s.repo.InsertLineTx(tx, id, item); err != nil {
				return 0, err
			}
			if item.IsBook() {
				if err := s.inventoryRepo.RestoreLargestTx(tx, item.Identifier, item.Quantity); err != nil {
					return 0, err
				}
			}
		}

		// A zero refund (pure exchange) posts no ledger entry.
		if req.TotalAmount > 0 {
			expense := &ledgerModel.Entry{
				Amount:        req.TotalAmount,
				Concept:       fmt.Sprintf("Return #%d", id),
				PaymentMethod: req.PaymentMethod,
				ReturnID:      &id,
			}
			if _, err := s.ledgerRepo.InsertExpenseTx(tx, expense); err != nil {
				return 0, err
			}
		}

		return id, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("return processed", map[string]interface{}{
		"return_id": id,
		"amount":    req.TotalAmount,
		"items":     len(items),
	})
	return id, nil
}

// GetReturn implements ServiceInterface.GetReturn.
func (s *returnsService) GetReturn(ctx context.Context, id int64) (*model.Return, error) {
	return s.repo.Get(ctx, id)
}
