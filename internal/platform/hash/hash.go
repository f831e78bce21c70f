// Package hash provides password hashing and verification on top of bcrypt.
package hash

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"academy_backend/internal/apperr"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// bcrypt cost factor. DefaultCost is 10 rounds.
const cost = bcrypt.DefaultCost

// Password hashes a plaintext password. Passwords shorter than
// MinPasswordLength are rejected with a validation error. The salt is
// embedded in the output, so hashing the same input twice produces
// different strings that both verify via Compare.
func Password(plain string) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", apperr.Validation(map[string]string{
			"password": fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare verifies a plaintext password against a stored hash. A mismatch is
// (false, nil); a malformed hash or any other bcrypt failure is (false, err)
// so callers can tell a wrong password from a broken record. The HTTP layer
// treats both as a failed login.
func Compare(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		slog.Warn("password comparison failed", "error", err)
		return false, err
	}
}
