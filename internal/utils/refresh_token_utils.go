package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken generates a SHA-256 hash of a refresh token. Only the hash
// is ever persisted.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token with its stored hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}
