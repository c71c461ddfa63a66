package model

import (
	"strings"

	"libreria-backend/internal/shared/utils"
)

// MinPrice is the lowest sale price the store accepts, in the smallest
// currency unit.
const MinPrice = 1000

// Book is the master record of a title, keyed by its ISBN-like identifier.
// Categories are kept ordered; storage joins them with commas.
type Book struct {
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	ImageURL   string   `json:"image_url"`
	Categories []string `json:"categories"`
	Price      int      `json:"price"`
}

// BookView is one row of a catalog search: the book joined with one of its
// inventory entries. Position and Quantity are nil for books with no stock
// (the search uses a LEFT JOIN so they still appear).
type BookView struct {
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	ImageURL   string   `json:"image_url"`
	Categories []string `json:"categories"`
	Price      int      `json:"price"`
	Position   *string  `json:"position"`
	Quantity   *int     `json:"quantity"`
}

// SearchFilters selects which fields a search term is matched against.
// With every flag off the term matches title, author, publisher and
// categories; the identifier is always matched as a raw substring.
type SearchFilters struct {
	Title    bool `json:"title"`
	Author   bool `json:"author"`
	Category bool `json:"category"`
}

// None reports whether no field filter is enabled.
func (f SearchFilters) None() bool {
	return !f.Title && !f.Author && !f.Category
}

// ValidIdentifier reports whether raw looks like a book identifier after
// stripping separators: digits only, length 10 or 13. No checksum is
// verified; scanners produce both ISBN-10 and ISBN-13.
func ValidIdentifier(raw string) bool {
	s := utils.StripIdentifier(raw)
	return utils.IsDigits(s) && (len(s) == 10 || len(s) == 13)
}

// JoinCategories flattens the ordered category list for storage.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// SplitCategories restores the category list from its stored form.
func SplitCategories(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
