package ledger

import (
	"strings"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.data.Customers...)
}

func (s *Store) AddCustomer(c models.Customer) (models.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.Customer{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	s.data.Customers = append(s.data.Customers, c)
	return c, s.commit()
}

func (s *Store) UpdateCustomer(id string, patch models.CustomerPatch) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCustomer(id)
	if c == nil {
		return models.Customer{}, ErrCustomerNotFound
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.Customer{}, ErrInvalidInput
		}
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	return *c, s.commit()
}

// ReceivePayment reduces a customer's due balance, never below zero; any
// excess is absorbed rather than becoming a credit.
func (s *Store) ReceivePayment(id string, amount float64) (models.Customer, error) {
	if amount <= 0 {
		return models.Customer{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCustomer(id)
	if c == nil {
		return models.Customer{}, ErrCustomerNotFound
	}

	c.Due -= amount
	if c.Due < 0 {
		c.Due = 0
	}
	return *c, s.commit()
}
