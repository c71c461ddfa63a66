package model

// LineItem is one grouped item of a sale, reservation or return, as the
// GUI submits it. Book-backed items carry an identifier; generic items
// ("Disc", "Promotion") carry a description and never touch inventory.
type LineItem struct {
	Identifier  string `json:"identifier,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unit_price"`
}

// IsBook reports whether the item is backed by a catalog book.
func (i LineItem) IsBook() bool {
	return i.Identifier != ""
}

// GroupLineItems merges book-backed items of the same identifier into one
// line, summing quantities. Generic items pass through untouched and keep
// their order.
func GroupLineItems(items []LineItem) []LineItem {
	var grouped []LineItem
	index := make(map[string]int)

	for _, item := range items {
		if !item.IsBook() {
			grouped = append(grouped, item)
			continue
		}
		if at, ok := index[item.Identifier]; ok {
			grouped[at].Quantity += item.Quantity
			continue
		}
		index[item.Identifier] = len(grouped)
		grouped = append(grouped, item)
	}

	return grouped
}

// Sale is a completed immediate sale with its lines.
type Sale struct {
	ID          int64  `json:"id"`
	ClientID    *int64 `json:"client_id,omitempty"`
	TotalAmount int    `json:"total_amount"`
	Note        string `json:"note"`
	CreatedAt   string `json:"created_at"` // YYYY-MM-DD HH:MM:SS
	Lines       []Line `json:"lines"`
}

// Line is one persisted sale line. Exactly one of BookIdentifier and
// Description is set.
type Line struct {
	ID             int64   `json:"id"`
	SaleID         int64   `json:"sale_id"`
	BookIdentifier *string `json:"book_identifier,omitempty"`
	Description    *string `json:"description,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      int     `json:"unit_price"`
}
