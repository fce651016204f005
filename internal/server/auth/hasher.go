package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor the album backend has always stored
// passwords with.
const bcryptCost = 10

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	// Hash returns a digest embedding a fresh random salt and the cost
	// parameter. Two calls with the same password yield different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A well-formed
	// mismatch returns false, never an error.
	Verify(password, digest string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
