package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher hashes and compares stored passwords.
type PasswordMatcher interface {
	Hash(plain string) (string, error)
	Matches(stored, plain string) bool
}

// NewPasswordMatcher picks the matcher for the plaintext compatibility flag.
func NewPasswordMatcher(plaintext bool, bcryptCost int) PasswordMatcher {
	if plaintext {
		return PlaintextMatcher{}
	}
	return BcryptMatcher{Cost: bcryptCost}
}

// PlaintextMatcher stores passwords verbatim and compares them for equality.
// It exists for compatibility with databases populated before hashing was
// available.
type PlaintextMatcher struct{}

// Hash returns plain unchanged.
func (PlaintextMatcher) Hash(plain string) (string, error) {
	return plain, nil
}

// Matches compares in constant time.
func (PlaintextMatcher) Matches(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// BcryptMatcher stores bcrypt hashes.
type BcryptMatcher struct {
	Cost int
}

// Hash hashes a plaintext password with the configured cost.
func (m BcryptMatcher) Hash(plain string) (string, error) {
	cost := m.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Matches verifies a password against its hashed value.
func (BcryptMatcher) Matches(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
