package admin

import "golang.org/x/crypto/bcrypt"

// Verifier checks the shared admin secret. The demo contract is plain
// string equality; the interface exists so a deployment can swap in a
// hashed credential without touching the read path.
type Verifier interface {
	Verify(secret string) bool
}

// PlainVerifier is the demo-mode equality check. An empty configured
// secret never matches, so an unconfigured gate stays closed.
type PlainVerifier struct {
	Secret string
}

func (v PlainVerifier) Verify(secret string) bool {
	return v.Secret != "" && secret == v.Secret
}

// BcryptVerifier checks against a bcrypt hash (ADMIN_SECRET_HASH).
type BcryptVerifier struct {
	Hash string
}

func (v BcryptVerifier) Verify(secret string) bool {
	if v.Hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(secret)) == nil
}
