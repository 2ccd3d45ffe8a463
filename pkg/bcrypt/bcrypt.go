package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 10
)

// HashPassword hashes a clear-text password with a per-hash random salt.
func HashPassword(password string) (string, error) {
	return hashPasswordWithCost(password, DefaultCost)
}

func hashPasswordWithCost(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword reports whether password matches hashedPassword.
func ComparePassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return fmt.Errorf("password comparison failed: %w", err)
	}
	return nil
}

// VerifyHash reports whether hash looks like a bcrypt hash.
func VerifyHash(hash string) bool {
	return len(hash) == 60 && hash[0:2] == "$2"
}
