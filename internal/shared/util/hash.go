package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum256Hex returns the hex-encoded SHA-256 of data. Stored alongside each
// processed document; not used for dedup.
func Sum256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashKey returns a filesystem-safe identifier for a namespace string.
func HashKey(s string) string {
	return Sum256Hex([]byte(s))
}
