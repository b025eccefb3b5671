package models

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

type User struct {
	Email string `json:"email"` // unique key
	// PasswordHash is a bcrypt hash for users created here. Backups taken
	// from the legacy app carry unsalted SHA-256 hex digests; those remain
	// accepted on login for compatibility.
	PasswordHash string `json:"pass"`
	Role         string `json:"role"`
}
