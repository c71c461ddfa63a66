package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	saleModel "libreria-backend/internal/domains/sale/model"
)

// CreateReservationRequest is the payload for opening a reservation. The
// client is resolved by phone first; a name conflict aborts before any
// write.
type CreateReservationRequest struct {
	ClientName     string               `json:"client_name"`
	ClientPhone    string               `json:"client_phone"`
	Items          []saleModel.LineItem `json:"items"`
	TotalAmount    int                  `json:"total_amount"`
	InitialDeposit int                  `json:"initial_deposit"`
	PaymentMethod  string               `json:"payment_method"`
	Note           string               `json:"note"`
}

func (r CreateReservationRequest) Validate() error {
	if len(r.Items) == 0 {
		return saleModel.ErrNoItems
	}
	if err := saleModel.ValidateLineItems(r.Items); err != nil {
		return err
	}
	if r.InitialDeposit <= 0 {
		return ErrInvalidDeposit
	}
	if r.InitialDeposit > r.TotalAmount {
		return ErrDepositExceedsTotal
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientName, validation.Required),
		validation.Field(&r.ClientPhone, validation.Required),
		validation.Field(&r.TotalAmount, validation.Min(0)),
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}

// DepositRequest adds a payment to a pending reservation.
type DepositRequest struct {
	Amount        int    `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

func (r DepositRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidDeposit
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}

// ConvertRequest settles a pending reservation into a sale.
type ConvertRequest struct {
	FinalPayment  int    `json:"final_payment"`
	PaymentMethod string `json:"payment_method"`
}

func (r ConvertRequest) Validate() error {
	if r.FinalPayment < 0 {
		return ErrInsufficientPayment
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}

// CancelRequest closes a pending reservation, optionally refunding the
// paid amount.
type CancelRequest struct {
	WithRefund bool `json:"with_refund"`
}
