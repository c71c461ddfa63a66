package model

// Entry is one append-only ledger row, income or expense depending on the
// table it lives in. At most one link field is set; links let a reversal be
// traced back to its sale, reservation or return.
type Entry struct {
	ID            int64  `json:"id"`
	Amount        int    `json:"amount"`
	Concept       string `json:"concept"`
	PaymentMethod string `json:"payment_method"`
	CreatedAt     string `json:"created_at"` // YYYY-MM-DD HH:MM:SS

	SaleID        *int64 `json:"sale_id,omitempty"`
	ReservationID *int64 `json:"reservation_id,omitempty"`
	ReturnID      *int64 `json:"return_id,omitempty"`
	SaleLineID    *int64 `json:"sale_line_id,omitempty"`
}

// DayStatement aggregates one day of ledger activity. The GUI rebuilds the
// daily cash statement from this alone.
type DayStatement struct {
	Date         string             `json:"date"`
	Incomes      []Entry            `json:"incomes"`
	Expenses     []Entry            `json:"expenses"`
	TotalIncome  int                `json:"total_income"`
	TotalExpense int                `json:"total_expense"`
	Net          int                `json:"net"`
	ByMethod     map[string]*Method `json:"by_method"`
}

// Method is the per-payment-method breakdown inside a DayStatement.
type Method struct {
	Income  int `json:"income"`
	Expense int `json:"expense"`
}

// ForMethod returns (creating if needed) the breakdown bucket of a payment
// method.
func (d *DayStatement) ForMethod(name string) *Method {
	m, ok := d.ByMethod[name]
	if !ok {
		m = &Method{}
		d.ByMethod[name] = m
	}
	return m
}
