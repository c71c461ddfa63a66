package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PostEntryRequest is the payload for posting a manual income or expense
// (rent, supplies, a cash adjustment). Service-generated entries are built
// directly as Entry values.
type PostEntryRequest struct {
	Amount        int    `json:"amount"`
	Concept       string `json:"concept"`
	PaymentMethod string `json:"payment_method"`
}

func (r PostEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Min(1).Error(ErrInvalidAmount.Error())),
		validation.Field(&r.Concept, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.PaymentMethod, validation.Required),
	)
}

// ValidateDate checks the YYYY-MM-DD shape used by statement queries.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
