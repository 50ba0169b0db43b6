package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// sha1Pool is a package-level pool of reusable SHA-1 hash instances used by
// the breach lookup, which hashes every checked secret.
var sha1Pool = sync.Pool{
	New: func() any {
		return sha1.New()
	},
}

// Hash computes the SHA-1 digest of data using a hasher pulled from the
// package pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// SHA-1 is used here only because the breach range API is keyed by it.
func Hash(data []byte) []byte {
	h := sha1Pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	sha1Pool.Put(h)

	return sum
}

// HashString returns the upper-case hex SHA-1 digest of the UTF-8 bytes of s.
//
// Example usage:
//
//	digest := utils.HashString("password")
//	// digest == "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8"
func HashString(s string) string {
	return strings.ToUpper(hex.EncodeToString(Hash([]byte(s))))
}

// SplitHash splits a hex digest into the 5-character range prefix and the
// remaining suffix.
func SplitHash(digest string) (prefix, suffix string) {
	const prefixLen = 5
	if len(digest) < prefixLen {
		return digest, ""
	}
	return digest[:prefixLen], digest[prefixLen:]
}
