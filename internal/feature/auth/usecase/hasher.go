package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// legacyDigestLength は旧クライアントが保存していたSHA-256 16進ダイジェストの長さです。
const legacyDigestLength = sha256.Size * 2

// dummyHash is compared against when the user does not exist, so that a missing
// account and a wrong password take roughly the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// bcryptHasher hashes passwords with bcrypt and verifies both bcrypt hashes and
// unsalted SHA-256 hex digests written by earlier clients.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher using the given bcrypt cost.
// A cost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify re-derives the digest of password and compares it with hash.
// It returns ErrInvalidCredentials on mismatch.
func (h *bcryptHasher) Verify(hash, password string) error {
	if isLegacyDigest(hash) {
		sum := sha256.Sum256([]byte(password))
		candidate := hex.EncodeToString(sum[:])
		if subtle.ConstantTimeCompare([]byte(strings.ToLower(hash)), []byte(candidate)) == 1 {
			return nil
		}
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func isLegacyDigest(hash string) bool {
	if len(hash) != legacyDigestLength {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
