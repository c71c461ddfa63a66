package service

import (
	"context"
	"database/sql"
	"fmt"

	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerModel "libreria-backend/internal/domains/ledger/model"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/domains/sale/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/pkg/database"
	"libreria-backend/pkg/logger"
)

type saleService struct {
	db            *infraDB.DB
	repo          repository.RepositoryInterface
	inventoryRepo invRepo.RepositoryInterface
	ledgerRepo    ledgerRepo.RepositoryInterface
}

// NewSaleService creates the sale service.
func NewSaleService(
	db *infraDB.DB,
	repo repository.RepositoryInterface,
	inventoryRepo invRepo.RepositoryInterface,
	ledgerRepo ledgerRepo.RepositoryInterface,
) ServiceInterface {
	return &saleService{
		db:            db,
		repo:          repo,
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// CreateSale implements ServiceInterface.CreateSale.
func (s *saleService) CreateSale(ctx context.Context, req model.CreateSaleRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	items := model.GroupLineItems(req.Items)

	saleID, err := database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		for _, item := range items {
			if !item.IsBook() {
				continue
			}
			if err := s.inventoryRepo.ConsumeTx(tx, item.Identifier, item.Quantity); err != nil {
				return 0, err
			}
		}

		sale := &model.Sale{
			ClientID:    req.ClientID,
			TotalAmount: req.TotalAmount,
			Note:        req.Note,
		}
		id, err := s.repo.InsertSaleTx(tx, sale)
		if err != nil {
			return 0, err
		}

		for _, item := range items {
			if _, err := s.repo.InsertLineTx(tx, id, item); err != nil {
				return 0, err
			}
		}

		income := &ledgerModel.Entry{
			Amount:        req.TotalAmount,
			Concept:       fmt.Sprintf("Sale #%d", id),
			PaymentMethod: req.PaymentMethod,
			SaleID:        &id,
		}
		if _, err := s.ledgerRepo.InsertIncomeTx(tx, income); err != nil {
			return 0, err
		}

		return id, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("sale created", map[string]interface{}{
		"sale_id": saleID,
		"total":   req.TotalAmount,
		"items":   len(items),
	})
	return saleID, nil
}

// Get implements ServiceInterface.Get.
func (s *saleService) Get(ctx context.Context, id int64) (*model.Sale, error) {
	return s.repo.Get(ctx, id)
}

// ListByDate implements ServiceInterface.ListByDate.
func (s *saleService) ListByDate(ctx context.Context, date string) ([]model.Sale, error) {
	if err := ledgerModel.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, date)
}
