package service

import (
	"context"
	"database/sql"
	"fmt"

	clientModel "libreria-backend/internal/domains/client/model"
	clientService "libreria-backend/internal/domains/client/service"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	ledgerModel "libreria-backend/internal/domains/ledger/model"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	"libreria-backend/internal/domains/reservation/model"
	"libreria-backend/internal/domains/reservation/repository"
	saleModel "libreria-backend/internal/domains/sale/model"
	saleRepo "libreria-backend/internal/domains/sale/repository"
	infraDB "libreria-backend/internal/infrastructure/database"
	"libreria-backend/pkg/database"
	"libreria-backend/pkg/logger"
)

// Refunds are handed back over the counter, so they always post as cash.
const refundPaymentMethod = "cash"

type reservationService struct {
	db            *infraDB.DB
	repo          repository.RepositoryInterface
	clients       clientService.ServiceInterface
	inventoryRepo invRepo.RepositoryInterface
	saleRepo      saleRepo.RepositoryInterface
	ledgerRepo    ledgerRepo.RepositoryInterface
}

// NewReservationService creates the reservation service.
func NewReservationService(
	db *infraDB.DB,
	repo repository.RepositoryInterface,
	clients clientService.ServiceInterface,
	inventoryRepo invRepo.RepositoryInterface,
	saleRepo saleRepo.RepositoryInterface,
	ledgerRepo ledgerRepo.RepositoryInterface,
) ServiceInterface {
	return &reservationService{
		db:            db,
		repo:          repo,
		clients:       clients,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// Create implements ServiceInterface.Create.
func (s *reservationService) Create(ctx context.Context, req model.CreateReservationRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	// Client resolution runs before the transaction: a conflict must reach
	// the operator without any stock or ledger effect.
	resolution, err := s.clients.FindOrCreate(ctx, clientModel.FindOrCreateRequest{
		Name:  req.ClientName,
		Phone: req.ClientPhone,
	})
	if err != nil {
		return 0, err
	}
	if resolution.Status == clientModel.StatusConflict {
		return 0, fmt.Errorf("%w: phone %s belongs to %q",
			clientModel.ErrNameConflict, req.ClientPhone, resolution.ExistingName)
	}

	items := saleModel.GroupLineItems(req.Items)

	state := model.StatePending
	if req.InitialDeposit >= req.TotalAmount {
		state = model.StateCompleted
	}

	id, err := database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		for _, item := range items {
			if !item.IsBook() {
				continue
			}
			if err := s.inventoryRepo.ConsumeTx(tx, item.Identifier, item.Quantity); err != nil {
				return 0, err
			}
		}

		reservation := &model.Reservation{
			ClientID:    resolution.ClientID,
			TotalAmount: req.TotalAmount,
			PaidAmount:  req.InitialDeposit,
			State:       state,
			Note:        req.Note,
		}
		id, err := s.repo.InsertTx(tx, reservation)
		if err != nil {
			return 0, err
		}

		for _, item := range items {
			if _, err := s.repo.InsertLineTx(tx, id, item); err != nil {
				return 0, err
			}
		}

		income := &ledgerModel.Entry{
			Amount:        req.InitialDeposit,
			Concept:       fmt.Sprintf("Reservation deposit #%d", id),
			PaymentMethod: req.PaymentMethod,
			ReservationID: &id,
		}
		if _, err := s.ledgerRepo.InsertIncomeTx(tx, income); err != nil {
			return 0, err
		}

		return id, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("reservation created", map[string]interface{}{
		"reservation_id": id,
		"client_id":      resolution.ClientID,
		"state":          state,
		"deposit":        req.InitialDeposit,
	})
	return id, nil
}

// AddDeposit implements ServiceInterface.AddDeposit.
func (s *reservationService) AddDeposit(ctx context.Context, id int64, req model.DepositRequest) (*model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (*model.Reservation, error) {
		reservation, err := s.repo.GetTx(tx, id)
		if err != nil {
			return nil, err
		}
		if reservation.State != model.StatePending {
			return nil, model.NewNotPendingError(reservation.State)
		}
		if reservation.PaidAmount+req.Amount > reservation.TotalAmount {
			return nil, model.ErrDepositExceedsTotal
		}

		reservation.PaidAmount += req.Amount
		if reservation.PaidAmount >= reservation.TotalAmount {
			reservation.State = model.StateCompleted
		}
		if err := s.repo.UpdatePaymentTx(tx, id, reservation.PaidAmount, reservation.State); err != nil {
			return nil, err
		}

		income := &ledgerModel.Entry{
			Amount:        req.Amount,
			Concept:       fmt.Sprintf("Reservation deposit #%d", id),
			PaymentMethod: req.PaymentMethod,
			ReservationID: &id,
		}
		if _, err := s.ledgerRepo.InsertIncomeTx(tx, income); err != nil {
			return nil, err
		}

		return reservation, nil
	})
}

// ConvertToSale implements ServiceInterface.ConvertToSale.
func (s *reservationService) ConvertToSale(ctx context.Context, id int64, req model.ConvertRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	saleID, err := database.WithTransactionResult(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		reservation, err := s.repo.GetTx(tx, id)
		if err != nil {
			return 0, err
		}
		if reservation.State != model.StatePending {
			return 0, model.NewNotPendingError(reservation.State)
		}
		if req.FinalPayment < reservation.Residual() {
			return 0, model.ErrInsufficientPayment
		}

		sale := &saleModel.Sale{
			ClientID:    &reservation.ClientID,
			TotalAmount: reservation.TotalAmount,
			Note:        fmt.Sprintf("Reservation #%d", id),
		}
		saleID, err := s.saleRepo.InsertSaleTx(tx, sale)
		if err != nil {
			return 0, err
		}

		for _, line := range reservation.Lines {
			item := saleModel.LineItem{
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if line.BookIdentifier != nil {
				item.Identifier = *line.BookIdentifier
			}
			if line.Description != nil {
				item.Description = *line.Description
			}
			if _, err := s.saleRepo.InsertLineTx(tx, saleID, item); err != nil {
				return 0, err
			}
		}

		// A fully paid-down reservation settles at zero; a zero income
		// would only be noise in the ledger, so it is suppressed.
		if req.FinalPayment > 0 {
			income := &ledgerModel.Entry{
				Amount:        req.FinalPayment,
				Concept:       fmt.Sprintf("Reservation #%d settled", id),
				PaymentMethod: req.PaymentMethod,
				SaleID:        &saleID,
			}
			if _, err := s.ledgerRepo.InsertIncomeTx(tx, income); err != nil {
				return 0, err
			}
		}

		if err := s.repo.UpdatePaymentTx(tx, id, reservation.TotalAmount, model.StateCompleted); err != nil {
			return 0, err
		}

		return saleID, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("reservation converted", map[string]interface{}{
		"reservation_id": id,
		"sale_id":        saleID,
		"final_payment":  req.FinalPayment,
	})
	return saleID, nil
}

// Cancel implements ServiceInterface.Cancel.
func (s *reservationService) Cancel(ctx context.Context, id int64, withRefund bool) error {
	err := database.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		reservation, err := s.repo.GetTx(tx, id)
		if err != nil {
			return err
		}
		if reservation.State != model.StatePending {
			return model.NewNotPendingError(reservation.State)
		}

		for _, line := range reservation.Lines {
			if line.BookIdentifier == nil {
				continue
			}
			if err := s.inventoryRepo.RestoreSmallestTx(tx, *line.BookIdentifier, line.Quantity); err != nil {
				return err
			}
		}

		if withRefund && reservation.PaidAmount > 0 {
			expense := &ledgerModel.Entry{
				Amount:        reservation.PaidAmount,
				Concept:       fmt.Sprintf("Reservation refund #%d", id),
				PaymentMethod: refundPaymentMethod,
				ReservationID: &id,
			}
			if _, err := s.ledgerRepo.InsertExpenseTx(tx, expense); err != nil {
				return err
			}
		}

		return s.repo.UpdateStateTx(tx, id, model.StateCancelled)
	})
	if err != nil {
		return err
	}

	logger.Info("reservation cancelled", map[string]interface{}{
		"reservation_id": id,
		"with_refund":    withRefund,
	})
	return nil
}

// ListActive implements ServiceInterface.ListActive.
func (s *reservationService) ListActive(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.ListActive(ctx)
}

// Details implements ServiceInterface.Details.
func (s *reservationService) Details(ctx context.Context, id int64) (*model.Details, error) {
	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.Get(ctx, reservation.ClientID)
	if err != nil {
		return nil, err
	}
	return &model.Details{Reservation: *reservation, Client: *client}, nil
}
