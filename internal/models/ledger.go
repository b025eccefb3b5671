package models

// Ledger is the whole persisted state: four collections plus one settings
// record, serialized as a single JSON document.
type Ledger struct {
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
	Sales     []Sale     `json:"sales"`
	Users     []User     `json:"users"`
	Settings  Settings   `json:"settings"`
}
