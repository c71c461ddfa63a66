package service

import (
	"context"

	"libreria-backend/internal/domains/reservation/model"
)

// ServiceInterface drives the reservation lifecycle:
//
//	create ─► PENDING ──deposit──► PENDING ──► COMPLETED (paid in full, or converted)
//	                  └──cancel(with|without refund)──► CANCELLED
type ServiceInterface interface {
	// Create resolves the client by phone, consumes stock for every
	// book-backed item and opens the reservation with its initial
	// deposit, all before returning the reservation id. A client name
	// conflict aborts with ErrNameConflict before anything is written.
	Create(ctx context.Context, req model.CreateReservationRequest) (int64, error)

	// AddDeposit adds a payment to a pending reservation, completing it
	// when the total is reached. Returns the updated reservation.
	AddDeposit(ctx context.Context, id int64, req model.DepositRequest) (*model.Reservation, error)

	// ConvertToSale settles a pending reservation into a sale mirroring
	// its lines. Inventory is untouched (consumed at creation); the final
	// payment is posted as income only when positive. Returns the sale id.
	ConvertToSale(ctx context.Context, id int64, req model.ConvertRequest) (int64, error)

	// Cancel closes a pending reservation, restoring stock for its
	// book-backed lines and, when requested, refunding the paid amount as
	// an expense.
	Cancel(ctx context.Context, id int64, withRefund bool) error

	// ListActive returns the pending reservations.
	ListActive(ctx context.Context) ([]model.Reservation, error)

	// Details returns a reservation joined with its client.
	Details(ctx context.Context, id int64) (*model.Details, error)
}
