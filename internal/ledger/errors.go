package ledger

import "errors"

// Sentinel errors for the three failure kinds: validation, referential and
// credential checks. Persistence failures are returned wrapped, not typed.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrOutOfStock         = errors.New("insufficient stock")
	ErrProductNotFound    = errors.New("product not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
