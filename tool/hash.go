package tool

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// SHA256Hex returns the hex digest of data, used as the result-cache key so
// re-submitting the same photo skips the network round trip.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// GenerateToken returns the identity of one upload operation. A token is
// compared at settlement time to decide whether a result is still current.
func GenerateToken() string {
	return uuid.New().String()
}
