package ledger

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/utils"
)

// Persister saves and loads the ledger as one opaque JSON document.
type Persister interface {
	Load() ([]byte, error)
	Save([]byte) error
}

// Defaults describe the store seeded on first run or when the persisted
// document is unreadable.
type Defaults struct {
	ShopName      string
	ShopLogo      string
	LowThreshold  float64
	OwnerPassword string
	StaffPassword string
}

// Store owns the in-memory ledger. Every mutation validates its input,
// applies the change and flushes the whole document before returning;
// subscribers are notified after each committed mutation. The store is
// created at startup and passed explicitly to whoever needs it.
type Store struct {
	mu     sync.Mutex
	p      Persister
	log    *zap.Logger
	data   models.Ledger
	subs   []func()
	subsMu sync.Mutex
}

func New(p Persister, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{p: p, log: log}
}

// Subscribe registers fn to run after every committed mutation. The
// presentation layer hangs off this; the store itself never renders.
func (s *Store) Subscribe(fn func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.subsMu.Lock()
	subs := append([]func(){}, s.subs...)
	s.subsMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Load reads the persisted document, or seeds a default store when nothing
// usable is found.
func (s *Store) Load(defaults Defaults) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.p.Load()
	if err != nil {
		s.log.Warn("ledger load failed, seeding defaults", zap.Error(err))
		return s.seed(defaults)
	}
	if raw == nil {
		return s.seed(defaults)
	}

	var data models.Ledger
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn("ledger document unreadable, seeding defaults", zap.Error(err))
		return s.seed(defaults)
	}

	s.data = data
	s.log.Info("ledger loaded",
		zap.Int("products", len(data.Products)),
		zap.Int("customers", len(data.Customers)),
		zap.Int("sales", len(data.Sales)),
		zap.Int("users", len(data.Users)))
	return nil
}

func (s *Store) seed(defaults Defaults) error {
	ownerHash, err := utils.HashPassword(defaults.OwnerPassword)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}
	staffHash, err := utils.HashPassword(defaults.StaffPassword)
	if err != nil {
		return fmt.Errorf("hash staff password: %w", err)
	}

	s.data = models.Ledger{
		Products:  []models.Product{},
		Customers: []models.Customer{},
		Sales:     []models.Sale{},
		Users: []models.User{
			{Email: "owner@shop", PasswordHash: ownerHash, Role: models.RoleOwner},
			{Email: "staff@shop", PasswordHash: staffHash, Role: models.RoleStaff},
		},
		Settings: models.Settings{
			ShopName:     defaults.ShopName,
			ShopLogo:     defaults.ShopLogo,
			LowThreshold: defaults.LowThreshold,
		},
	}
	s.log.Info("seeded default ledger", zap.String("shop", defaults.ShopName))
	return s.commit()
}

// commit flushes the whole document. Callers hold s.mu. On failure the
// in-memory state keeps the mutation and diverges from disk until the next
// successful write; the error is surfaced to the initiating action.
func (s *Store) commit() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.p.Save(raw); err != nil {
		s.log.Error("ledger flush failed", zap.Error(err))
		return err
	}
	go s.notify()
	return nil
}

// Snapshot returns a copy of the current collections for read-only use.
func (s *Store) Snapshot() models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Ledger{
		Products:  append([]models.Product(nil), s.data.Products...),
		Customers: append([]models.Customer(nil), s.data.Customers...),
		Sales:     append([]models.Sale(nil), s.data.Sales...),
		Users:     append([]models.User(nil), s.data.Users...),
		Settings:  s.data.Settings,
	}
}

func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Settings
}

func (s *Store) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ShopName != nil {
		s.data.Settings.ShopName = *patch.ShopName
	}
	if patch.ShopLogo != nil {
		s.data.Settings.ShopLogo = *patch.ShopLogo
	}
	if patch.LowThreshold != nil {
		if *patch.LowThreshold < 0 {
			return s.data.Settings, ErrInvalidInput
		}
		s.data.Settings.LowThreshold = *patch.LowThreshold
	}
	return s.data.Settings, s.commit()
}

// Merge appends imported records, backfilling identifiers where missing.
// Users whose email already exists are skipped; settings are never imported.
// Parsing happens before Merge is called, so a malformed file leaves the
// store untouched.
func (s *Store) Merge(doc models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range doc.Products {
		if p.ID == "" {
			p.ID = newID()
		}
		s.data.Products = append(s.data.Products, p)
	}
	for _, c := range doc.Customers {
		if c.ID == "" {
			c.ID = newID()
		}
		s.data.Customers = append(s.data.Customers, c)
	}
	for _, sale := range doc.Sales {
		if sale.ID == "" {
			sale.ID = newID()
		}
		s.data.Sales = append(s.data.Sales, sale)
	}
	for _, u := range doc.Users {
		if s.findUser(u.Email) == nil {
			s.data.Users = append(s.data.Users, u)
		}
	}
	return s.commit()
}

func (s *Store) findUser(email string) *models.User {
	for i := range s.data.Users {
		if s.data.Users[i].Email == email {
			return &s.data.Users[i]
		}
	}
	return nil
}

func (s *Store) findProduct(id string) *models.Product {
	for i := range s.data.Products {
		if s.data.Products[i].ID == id {
			return &s.data.Products[i]
		}
	}
	return nil
}

func (s *Store) findCustomer(id string) *models.Customer {
	for i := range s.data.Customers {
		if s.data.Customers[i].ID == id {
			return &s.data.Customers[i]
		}
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}
