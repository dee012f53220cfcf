package auth

import (
	"editais/config"
	"editais/internal/domain/service"
	"editais/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements PasswordHasher on top of golang.org/x/crypto/bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a password hasher with the configured cost,
// falling back to the bcrypt default when none is set.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.Wrap(err, "password mismatch")
	}
	return nil
}
