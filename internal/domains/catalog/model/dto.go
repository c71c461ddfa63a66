package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"libreria-backend/internal/shared/utils"
)

// UpsertBookRequest is the payload for creating or updating a book.
type UpsertBookRequest struct {
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	ImageURL   string   `json:"image_url"`
	Categories []string `json:"categories"`
	Price      int      `json:"price"`
}

func (r UpsertBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required, validation.By(identifierRule)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Price, validation.Min(MinPrice).Error("price is below the minimum sale price")),
	)
}

// Book converts the request into the domain entity, normalizing the
// identifier to its stripped digit form.
func (r UpsertBookRequest) Book() Book {
	return Book{
		Identifier: utils.StripIdentifier(r.Identifier),
		Title:      r.Title,
		Author:     r.Author,
		Publisher:  r.Publisher,
		ImageURL:   r.ImageURL,
		Categories: r.Categories,
		Price:      r.Price,
	}
}

// SearchRequest carries a search term and its field filters.
type SearchRequest struct {
	Term    string        `json:"term" form:"term"`
	Filters SearchFilters `json:"filters"`
}

func identifierRule(value interface{}) error {
	s, _ := value.(string)
	if !ValidIdentifier(s) {
		return ErrInvalidIdentifier
	}
	return nil
}
