package model

import (
	"regexp"
	"strings"
)

// PositionUnshelved is the sentinel slot used when restored stock has no
// usable origin (cancelled reservations and returns of books with no
// remaining entries). It is never accepted from user input.
const PositionUnshelved = "UNSHELVED"

// positionPattern matches the fixed shelf grid {01..99} x {A..J}.
var positionPattern = regexp.MustCompile(`^(0[1-9]|[1-9][0-9])[A-J]$`)

// Entry is one physical stock row: a book at one shelf position.
// Quantity is always >= 1; the row is deleted when it would reach 0.
type Entry struct {
	BookIdentifier string `json:"book_identifier"`
	Position       string `json:"position"`
	Quantity       int    `json:"quantity"`
	AcquiredAt     string `json:"acquired_at"` // YYYY-MM-DD
	UpdatedAt      string `json:"updated_at"`  // YYYY-MM-DD
}

// NormalizePosition uppercases a slot label and validates it against the
// grid. Returns ErrInvalidPosition for anything off the 990 slots.
func NormalizePosition(position string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(position))
	if !positionPattern.MatchString(p) {
		return "", ErrInvalidPosition
	}
	return p, nil
}
