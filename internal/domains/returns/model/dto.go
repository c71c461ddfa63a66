package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	saleModel "libreria-backend/internal/domains/sale/model"
)

// ProcessReturnRequest is the payload of a customer return. TotalAmount is
// the refund handed back, trusted as submitted like a sale total.
type ProcessReturnRequest struct {
	Items         []saleModel.LineItem `json:"items"`
	TotalAmount   int                  `json:"total_amount"`
	PaymentMethod string               `json:"payment_method"`
}

func (r ProcessReturnRequest) Validate() error {
	if len(r.Items) == 0 {
		return saleModel.ErrNoItems
	}
	if err := saleModel.ValidateLineItems(r.Items); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.TotalAmount, validation.Min(0)),
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}
