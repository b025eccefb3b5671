package ledger

import (
	"strings"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.data.Products...)
}

func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.Product{}, ErrInvalidInput
	}
	if p.Cost < 0 || p.Price < 0 || p.Stock < 0 || p.Threshold < 0 {
		return models.Product{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	s.data.Products = append(s.data.Products, p)
	return p, s.commit()
}

func (s *Store) UpdateProduct(id string, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProduct(id)
	if p == nil {
		return models.Product{}, ErrProductNotFound
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.Product{}, ErrInvalidInput
		}
		p.Name = *patch.Name
	}
	if patch.Company != nil {
		p.Company = *patch.Company
	}
	if patch.Cost != nil {
		if *patch.Cost < 0 {
			return models.Product{}, ErrInvalidInput
		}
		p.Cost = *patch.Cost
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return models.Product{}, ErrInvalidInput
		}
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return models.Product{}, ErrInvalidInput
		}
		p.Stock = *patch.Stock
	}
	if patch.Threshold != nil {
		if *patch.Threshold < 0 {
			return models.Product{}, ErrInvalidInput
		}
		p.Threshold = *patch.Threshold
	}
	return *p, s.commit()
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Products {
		if s.data.Products[i].ID == id {
			s.data.Products = append(s.data.Products[:i], s.data.Products[i+1:]...)
			return s.commit()
		}
	}
	return ErrProductNotFound
}

// AddStock increases a product's stock. No upper bound, no audit trail
// beyond the mutation itself.
func (s *Store) AddStock(id string, amount float64) (models.Product, error) {
	if amount <= 0 {
		return models.Product{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProduct(id)
	if p == nil {
		return models.Product{}, ErrProductNotFound
	}
	p.Stock += amount
	return *p, s.commit()
}

// IsLow reports whether a product sits at or below its effective reorder
// point: the product's own threshold when nonzero, else the global one.
// Both row highlighting and the consolidated listing go through here.
func IsLow(p models.Product, settings models.Settings) bool {
	t := p.Threshold
	if t == 0 {
		t = settings.LowThreshold
	}
	return t != 0 && p.Stock <= t
}

func (s *Store) LowStock() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lows []models.Product
	for _, p := range s.data.Products {
		if IsLow(p, s.data.Settings) {
			lows = append(lows, p)
		}
	}
	return lows
}
