package ledger

import (
	"time"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

// Stats are the dashboard numbers: catalogue size, summed stock, revenue for
// the given day and total outstanding dues.
type Stats struct {
	Products     int     `json:"products"`
	TotalStock   float64 `json:"totalStock"`
	TodayRevenue float64 `json:"todayRevenue"`
	TotalDue     float64 `json:"totalDue"`
}

func (s *Store) DashboardStats(date string) Stats {
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Products: len(s.data.Products)}
	for _, p := range s.data.Products {
		st.TotalStock += p.Stock
	}
	for _, sale := range s.data.Sales {
		if sale.Date == date {
			st.TodayRevenue += sale.Total
		}
	}
	for _, c := range s.data.Customers {
		st.TotalDue += c.Due
	}
	return st
}

// SeedSampleData appends the demo catalogue and two demo customers.
func (s *Store) SeedSampleData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []struct {
		name, company    string
		cost, price      float64
		stock, threshold float64
	}{
		{"Kazi Grower", "Kazi", 30, 38, 150, 20},
		{"Nahar Starter", "Nahar", 28, 35, 90, 15},
		{"Paragon Layer", "Paragon", 32, 40, 60, 10},
	}
	for _, p := range products {
		s.data.Products = append(s.data.Products, models.Product{
			ID: newID(), Name: p.name, Company: p.company,
			Cost: p.cost, Price: p.price, Stock: p.stock, Threshold: p.threshold,
		})
	}

	s.data.Customers = append(s.data.Customers,
		models.Customer{ID: newID(), Name: "Rahim", Phone: "01710000000", Due: 0},
		models.Customer{ID: newID(), Name: "Karim", Phone: "01720000000", Due: 200},
	)
	return s.commit()
}
