package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"libreria-backend/internal/shared/utils"
)

// FindOrCreateRequest is the payload for resolving a client by phone.
type FindOrCreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r FindOrCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.By(nameRule)),
		validation.Field(&r.Phone, validation.Required, validation.By(phoneRule)),
	)
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	if !utils.IsDigits(s) {
		return ErrInvalidPhone
	}
	return nil
}

func nameRule(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "0123456789") {
		return ErrInvalidName
	}
	return nil
}
