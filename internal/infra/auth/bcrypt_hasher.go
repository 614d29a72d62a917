// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"users/config"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/service"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configuration sets none.
const DefaultCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	minScore int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, minScore := DefaultCost, 0
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		minScore = cfg.PasswordStrength.MinScore
	}

	return NewBcryptHasherWithCost(cost, minScore)
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor and zxcvbn
// minimum score. Out-of-range costs fall back to DefaultCost.
func NewBcryptHasherWithCost(cost, minScore int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	return &bcryptHasher{cost: cost, minScore: minScore}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil only if the password and hash match; malformed hashes also land here.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength scores the password with zxcvbn.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.minScore <= 0 {
		return nil
	}

	if zxcvbn.PasswordStrength(password, nil).Score < h.minScore {
		return domainerrors.ErrPasswordStrength
	}

	return nil
}
