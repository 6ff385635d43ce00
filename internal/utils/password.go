package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is a valid bcrypt hash of an unguessable throwaway
// value. Login flows compare against it when the account does not exist so
// that the "unknown user" and "wrong password" paths cost the same.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a bcrypt hash of the given plaintext password using
// the supplied cost factor. Costs below bcrypt.MinCost fall back to
// bcrypt.DefaultCost.
//
// The plaintext is never stored or logged; the returned hash is the only
// representation that may be persisted.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison work is performed by bcrypt itself and does
// not short-circuit on mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck performs a bcrypt comparison against a fixed dummy hash
// and discards the result. Called on the "account not found" login path so
// that response timing does not reveal whether an email is registered.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
}
