package repository

import (
	"strings"

	"libreria-backend/internal/domains/catalog/model"
	"libreria-backend/internal/shared/utils"
)

// buildSearchQuery assembles the filtered catalog search used by the GUI.
// Text fields match through normalize() so the search is case- and
// accent-insensitive; the identifier always matches as a raw substring so
// partial scans still hit.
func buildSearchQuery(term string, filters model.SearchFilters) (string, []interface{}) {
	normalized := "%" + utils.Normalize(term) + "%"
	raw := "%" + term + "%"

	var conds []string
	var args []interface{}

	addField := func(column string) {
		conds = append(conds, "normalize(b."+column+") LIKE ?")
		args = append(args, normalized)
	}

	if filters.None() {
		addField("title")
		addField("author")
		addField("publisher")
		addField("categories")
	} else {
		if filters.Title {
			addField("title")
		}
		if filters.Author {
			addField("author")
		}
		if filters.Category {
			addField("categories")
		}
	}

	conds = append(conds, "b.identifier LIKE ?")
	args = append(args, raw)

	query := `
		SELECT b.identifier, b.title, b.author, b.publisher, b.image_url,
		       b.categories, b.price, i.position, i.quantity
		FROM books b
		LEFT JOIN inventory i ON i.book_identifier = b.identifier
		WHERE ` + strings.Join(conds, " OR ") + `
		ORDER BY b.title ASC, b.identifier ASC, i.position ASC`

	return query, args
}
