package models

// Payment status tags recorded on a sale. Any other caller-supplied string
// is kept verbatim; only PaymentDue has ledger side effects.
const (
	PaymentPaid = "paid"
	PaymentDue  = "due"
)

// WalkInName labels sales with no customer record attached.
const WalkInName = "Walk-in"

// Sale is one immutable row of the append-only ledger. Product and customer
// names are denormalized at creation time so historical records stay
// readable after later edits or deletions.
type Sale struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // calendar date, 2006-01-02
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Qty          float64 `json:"qty"`
	Total        float64 `json:"total"`
	CustomerID   string  `json:"customerId,omitempty"` // empty for walk-in
	CustomerName string  `json:"customerName"`
	Paid         string  `json:"paid"`
	Profit       float64 `json:"profit"`
}
