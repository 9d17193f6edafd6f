package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ValidatePasswordPolicy enforces the account password rule: at least 8
// characters, letters and digits only.
func ValidatePasswordPolicy(password string) error {
	if len(password) < 8 || !isAlphanumeric(password) {
		return fmt.Errorf("password must be alphanumeric and at least 8 characters")
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return len(s) > 0
}

// HashPassword hashes a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain text password with a stored hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
