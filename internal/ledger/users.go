package ledger

import (
	"strings"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/utils"
)

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.data.Users...)
}

func (s *Store) CreateUser(email, password, role string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}
	if role != models.RoleOwner && role != models.RoleStaff {
		return models.User{}, ErrInvalidInput
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(email) != nil {
		return models.User{}, ErrUserExists
	}

	user := models.User{Email: email, PasswordHash: hash, Role: role}
	s.data.Users = append(s.data.Users, user)
	return user, s.commit()
}

// Authenticate checks the credential pair. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(email)
	if u == nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return *u, nil
}
