package repository

import (
	"context"
	"database/sql"

	"libreria-backend/internal/domains/reservation/model"
	saleModel "libreria-backend/internal/domains/sale/model"
)

// RepositoryInterface defines reservation data access. State transitions
// happen inside the caller's transaction; the repository never decides
// state.
type RepositoryInterface interface {
	// InsertTx appends the reservation header and returns the new id.
	InsertTx(tx *sql.Tx, reservation *model.Reservation) (int64, error)

	// InsertLineTx appends one line and returns the line id.
	InsertLineTx(tx *sql.Tx, reservationID int64, item saleModel.LineItem) (int64, error)

	// Get returns a reservation with its lines.
	// Returns model.ErrReservationNotFound when no row exists.
	Get(ctx context.Context, id int64) (*model.Reservation, error)

	// GetTx is Get inside an enclosing transaction, used before a state
	// transition.
	GetTx(tx *sql.Tx, id int64) (*model.Reservation, error)

	// UpdatePaymentTx sets paid_amount and state, stamping updated_at.
	UpdatePaymentTx(tx *sql.Tx, id int64, paidAmount int, state string) error

	// UpdateStateTx sets the state only, stamping updated_at.
	UpdateStateTx(tx *sql.Tx, id int64, state string) error

	// ListActive returns the PENDING reservations with their lines,
	// oldest first.
	ListActive(ctx context.Context) ([]model.Reservation, error)
}
