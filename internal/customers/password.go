package customers

import (
	"errors"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// Hasher derives salted bcrypt hashes at a fixed cost.
type Hasher struct {
	Cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{Cost: cost}
}

func (h Hasher) Hash(plaintext string) ([]byte, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Validation("password must be at most 72 bytes")
	}
	return hash, err
}

func (h Hasher) Verify(hash []byte, plaintext string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
