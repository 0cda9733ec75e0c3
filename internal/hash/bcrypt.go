package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopforge/storefront-server/internal/model"
)

// Cost is the bcrypt cost factor.
const Cost = 12

var _ model.Hasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a salted, slow, one-way function. Hashing the
// same password twice yields different digests.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: Cost}
}

// Hash returns the bcrypt digest of secret.
func (b *Bcrypt) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether secret matches a previously produced digest.
func (b *Bcrypt) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
