package model

import (
	clientModel "libreria-backend/internal/domains/client/model"
)

// Reservation states. Only PENDING is mutable; COMPLETED and CANCELLED are
// terminal.
const (
	StatePending   = "PENDING"
	StateCompleted = "COMPLETED"
	StateCancelled = "CANCELLED"
)

// Reservation is a partial-payment hold on stock. Stock is consumed when
// the reservation is created and only flows back on cancellation;
// conversion to a sale therefore never touches inventory again.
type Reservation struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	TotalAmount int    `json:"total_amount"`
	PaidAmount  int    `json:"paid_amount"`
	State       string `json:"state"`
	Note        string `json:"note"`
	CreatedAt   string `json:"created_at"` // YYYY-MM-DD HH:MM:SS
	UpdatedAt   string `json:"updated_at"` // YYYY-MM-DD HH:MM:SS
	Lines       []Line `json:"lines"`
}

// Line is one persisted reservation line. Exactly one of BookIdentifier
// and Description is set; lines of the same identifier are merged at
// creation.
type Line struct {
	ID             int64   `json:"id"`
	ReservationID  int64   `json:"reservation_id"`
	BookIdentifier *string `json:"book_identifier,omitempty"`
	Description    *string `json:"description,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      int     `json:"unit_price"`
}

// Details is a reservation joined with its client for the GUI detail view.
type Details struct {
	Reservation
	Client clientModel.Client `json:"client"`
}

// Residual is the amount still owed on the reservation.
func (r *Reservation) Residual() int {
	return r.TotalAmount - r.PaidAmount
}
