package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is used when registering new credentials.
	DefaultIterations = 100_000
	// MaxIterations caps the work factor a caller may request. Callers
	// must record the clamped count next to the digest so verification
	// keeps working if the cap ever changes.
	MaxIterations = 100_000

	saltLen   = 16
	digestLen = 32
)

// HashPassword derives a hex encoded 256 bit digest from the password
// and the hex encoded salt. Deterministic, no side effects.
func HashPassword(password, saltHex string, iterations int) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("auth: salt is not valid hex, cause %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, ClampIterations(iterations), digestLen, sha256.New)
	return hex.EncodeToString(key), nil
}

// ClampIterations returns the iteration count that HashPassword will
// actually use for the requested one.
func ClampIterations(n int) int {
	if n <= 0 {
		return DefaultIterations
	}
	if n > MaxIterations {
		return MaxIterations
	}
	return n
}

// NewSaltHex draws a fresh 16 byte salt from the crypto random source.
func NewSaltHex() (string, error) {
	var buf [saltLen]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		return "", fmt.Errorf("auth: unable to generate salt, cause %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
