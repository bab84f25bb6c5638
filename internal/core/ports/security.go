package ports

// PasswordHasher is the one-way password verifier. Digests never leave the
// credential store boundary.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}
