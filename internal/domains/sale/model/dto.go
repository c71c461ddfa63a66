package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSaleRequest is the payload of an immediate sale. TotalAmount is
// trusted as submitted: the GUI may apply a manual override, so it is not
// recomputed from the lines.
type CreateSaleRequest struct {
	ClientID      *int64     `json:"client_id"`
	Items         []LineItem `json:"items"`
	TotalAmount   int        `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	Note          string     `json:"note"`
}

func (r CreateSaleRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	if err := ValidateLineItems(r.Items); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.TotalAmount, validation.Min(0)),
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}

// ValidateLineItems checks every item: quantity >= 1, unit price >= 0, and
// exactly one of identifier/description present.
func ValidateLineItems(items []LineItem) error {
	for i, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d: quantity must be at least 1", ErrInvalidLine, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d: unit price must not be negative", ErrInvalidLine, i)
		}
		if item.IsBook() == (item.Description != "") {
			return fmt.Errorf("%w: item %d: exactly one of identifier and description required", ErrInvalidLine, i)
		}
	}
	return nil
}
