package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrHashingFailed is returned when bcrypt cannot hash the password.
	ErrHashingFailed = errors.New("password: hashing failed")

	// ErrMismatch is returned by Verify when the password does not match
	// the stored hash.
	ErrMismatch = errors.New("password: does not match the stored hash")
)

// DefaultCost is the bcrypt cost used when no explicit cost is given. It
// tracks bcrypt.DefaultCost, which balances hashing time against brute-force
// resistance on current hardware.
const DefaultCost = bcrypt.DefaultCost

// Hash derives a bcrypt hash of password at DefaultCost.
func Hash(password string) (string, error) {
	return HashWithCost(password, DefaultCost)
}

// HashWithCost derives a bcrypt hash at the given cost. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func HashWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Verify compares password against a bcrypt hash, returning ErrMismatch when
// they do not correspond. The comparison is constant-time within bcrypt.
func Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.Join(ErrMismatch, err)
	}
	return nil
}
