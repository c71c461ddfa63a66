package model

// ReturnWindowDays is how far back a sale may lie for its book to still be
// returnable. The boundary day counts: sold exactly 30 days ago is eligible.
const ReturnWindowDays = 30

// Return is a processed customer return with its lines. The refunded amount
// is recorded as a ledger expense linked back to the return.
type Return struct {
	ID          int64  `json:"id"`
	TotalAmount int    `json:"total_amount"`
	CreatedAt   string `json:"created_at"` // YYYY-MM-DD HH:MM:SS
	Lines       []Line `json:"lines"`
}

// Line is one persisted return line. Exactly one of BookIdentifier and
// Description is set.
type Line struct {
	ID             int64   `json:"id"`
	ReturnID       int64   `json:"return_id"`
	BookIdentifier *string `json:"book_identifier,omitempty"`
	Description    *string `json:"description,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      int     `json:"unit_price"`
}
