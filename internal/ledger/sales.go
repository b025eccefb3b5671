package ledger

import (
	"strings"
	"time"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

const dateLayout = "2006-01-02"

// RecordSale is the one cross-entity transaction: it checks stock, snapshots
// price and cost into the new sale, decrements stock and, for a credit sale
// to a known customer, raises that customer's due balance. Validation comes
// first so a failure leaves no partial state behind.
func (s *Store) RecordSale(productID, customerID string, qty float64, paid, date string) (*models.Sale, error) {
	if productID == "" || qty <= 0 {
		return nil, ErrInvalidInput
	}
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prod := s.findProduct(productID)
	if prod == nil {
		return nil, ErrProductNotFound
	}
	if prod.Stock < qty {
		return nil, ErrOutOfStock
	}

	total := qty * prod.Price
	profit := qty * (prod.Price - prod.Cost)

	prod.Stock -= qty

	custID := ""
	custName := models.WalkInName
	if cust := s.findCustomer(customerID); cust != nil {
		custID = cust.ID
		custName = cust.Name
		if paid == models.PaymentDue {
			cust.Due += total
		}
	}

	sale := models.Sale{
		ID:           newID(),
		Date:         date,
		ProductID:    prod.ID,
		ProductName:  prod.Name,
		Qty:          qty,
		Total:        total,
		CustomerID:   custID,
		CustomerName: custName,
		Paid:         paid,
		Profit:       profit,
	}
	s.data.Sales = append(s.data.Sales, sale)

	return &sale, s.commit()
}

// Sales returns the ledger in insertion order, optionally filtered by a
// case-insensitive product or customer name match.
func (s *Store) Sales(query string) []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]models.Sale(nil), s.data.Sales...)
	}

	var out []models.Sale
	for _, sale := range s.data.Sales {
		if strings.Contains(strings.ToLower(sale.ProductName), query) ||
			strings.Contains(strings.ToLower(sale.CustomerName), query) {
			out = append(out, sale)
		}
	}
	return out
}
