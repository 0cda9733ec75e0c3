package model

// Hasher produces and verifies one-way digests of user passwords.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}
