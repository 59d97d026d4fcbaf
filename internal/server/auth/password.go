package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// UnsetPassword is stored for accounts that never had a password. It never
// verifies.
const UnsetPassword = "unset"

// PasswordHasher hashes and verifies stored passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashed string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. Costs below
// bcrypt.DefaultCost (10) are raised to it.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) cost() int {
	if h.Cost < bcrypt.DefaultCost {
		return bcrypt.DefaultCost
	}
	return h.Cost
}

// Hash returns a self-describing bcrypt hash ($2a$<cost>$<salt+digest>).
func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify never panics and never errors: an unset or corrupt hash simply
// fails.
func (h BcryptHasher) Verify(password, hashed string) bool {
	if hashed == UnsetPassword || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

func HashPassword(password string) (string, error) {
	return BcryptHasher{}.Hash(password)
}

func CheckPasswordHash(password, hashed string) bool {
	return BcryptHasher{}.Verify(password, hashed)
}
