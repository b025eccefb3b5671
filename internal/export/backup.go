package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

// Document is the backup interchange format. Every collection is optional on
// import; ExportedAt is informational only.
type Document struct {
	Products   []models.Product  `json:"products"`
	Customers  []models.Customer `json:"customers"`
	Sales      []models.Sale     `json:"sales"`
	Users      []models.User     `json:"users"`
	Settings   models.Settings   `json:"settings"`
	ExportedAt string            `json:"exportedAt,omitempty"`
}

func NewDocument(l models.Ledger) Document {
	return Document{
		Products:   l.Products,
		Customers:  l.Customers,
		Sales:      l.Sales,
		Users:      l.Users,
		Settings:   l.Settings,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// ParseDocument decodes a backup. Parsing precedes any merge, so a bad file
// never leaves a half-imported store behind.
func ParseDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("invalid backup file: %w", err)
	}
	return doc, nil
}

// Ledger converts the document back into collections for merging. Settings
// are deliberately excluded: imports append records, they never reconfigure
// the shop.
func (d Document) Ledger() models.Ledger {
	return models.Ledger{
		Products:  d.Products,
		Customers: d.Customers,
		Sales:     d.Sales,
		Users:     d.Users,
	}
}

// SampleDocument is the downloadable template showing the expected shape.
func SampleDocument(settings models.Settings) Document {
	return Document{
		Products: []models.Product{
			{ID: "s1", Name: "Sample Feed", Company: "Kazi", Cost: 30, Price: 40, Stock: 100, Threshold: 10},
		},
		Customers: []models.Customer{
			{ID: "sc1", Name: "Sample Cust", Phone: "01700000000", Due: 0},
		},
		Sales:    []models.Sale{},
		Users:    []models.User{{Email: "owner@shop", Role: models.RoleOwner}},
		Settings: settings,
	}
}
