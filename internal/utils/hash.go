package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

var sha256HexPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// SHA256Hex returns the lowercase hex-encoded SHA-256 digest of value.
//
// Example usage:
//
//	digest := utils.SHA256Hex("user@example.com")
func SHA256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// IsSHA256Hex reports whether value already looks like a SHA-256 hex digest
// (exactly 64 lowercase hex characters).
func IsSHA256Hex(value string) bool {
	return sha256HexPattern.MatchString(value)
}

// HashIfNeeded returns value unchanged when it is already a digest and its
// SHA-256 hex digest otherwise.
func HashIfNeeded(value string) string {
	if IsSHA256Hex(value) {
		return value
	}
	return SHA256Hex(value)
}
