package models

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// Due is the outstanding balance the customer owes the shop. It grows
	// only through credit sales and shrinks only through payment receipts.
	Due float64 `json:"due"`
}

// CustomerPatch carries a field-level update; nil fields are left untouched.
// Due is deliberately absent: it moves only via sales and payments.
type CustomerPatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}
