package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to master-password hashes. 12 keeps
// a single verification around a quarter second on desktop hardware.
const bcryptCost = 12

// masterHasher is the bcrypt-backed implementation of [MasterHasher].
type masterHasher struct {
	cost int
}

// NewMasterHasher constructs a [MasterHasher] with the default cost factor.
func NewMasterHasher() MasterHasher {
	return &masterHasher{cost: bcryptCost}
}

// Hash implements [MasterHasher]. bcrypt embeds a fresh random salt in every
// hash, so repeated calls with the same password produce distinct values.
func (h *masterHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash master password: %w", err)
	}
	return string(hashed), nil
}

// Verify implements [MasterHasher]. bcrypt's comparison is constant-time
// with respect to the password. A malformed hashText (truncated row, foreign
// data) reports false rather than surfacing an error: to the caller it is
// simply a failed authentication.
func (h *masterHasher) Verify(password string, hashText string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashText), []byte(password)) == nil
}
