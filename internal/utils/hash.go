package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// LegacyHash is the unsalted SHA-256 hex digest the old app stored. Kept so
// that imported backups keep working; new hashes are always bcrypt.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPasswordHash accepts both bcrypt hashes and legacy SHA-256 digests.
func CheckPasswordHash(password, hash string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	legacy := LegacyHash(password)
	return subtle.ConstantTimeCompare([]byte(legacy), []byte(hash)) == 1
}
