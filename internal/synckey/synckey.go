// Package synckey generates and validates the identifiers partitioning the
// remote store: human-shareable team keys and deterministic per-account
// scope ids.
package synckey

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const keyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// keyPattern matches the shareable team key shape: TF-XXXXXX-XXXX.
var keyPattern = regexp.MustCompile(`^TF-[A-Z0-9]{6}-[A-Z0-9]{4}$`)

// scopePattern matches the derived personal scope shape, e.g. tf-v12-914636.
var scopePattern = regexp.MustCompile(`^tf-v12-\d{1,10}$`)

// Generate returns a fresh shareable team key, e.g. TF-K7M2Q9-X4Z7.
// Ambiguous characters (0/O, 1/I) are excluded from the alphabet.
func Generate() string {
	return fmt.Sprintf("TF-%s-%s", randomSegment(6), randomSegment(4))
}

func randomSegment(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(keyAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(fmt.Sprintf("synckey: entropy source unavailable: %v", err))
		}
		b.WriteByte(keyAlphabet[idx.Int64()])
	}
	return b.String()
}

// Valid reports whether key has the shareable team key shape.
func Valid(key string) bool {
	return keyPattern.MatchString(strings.ToUpper(strings.TrimSpace(key)))
}

// ValidAccountScope reports whether key has the derived personal scope shape.
func ValidAccountScope(key string) bool {
	return scopePattern.MatchString(strings.TrimSpace(key))
}

// Normalize uppercases and trims a user-entered key.
func Normalize(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// AccountScope derives the deterministic personal scope id for an email.
// The hash intentionally reproduces the historical client algorithm
// (Java-style 31-multiplier over the lowercased address, truncated to 32
// bits) so existing remote records stay addressable.
func AccountScope(email string) string {
	var hash int32
	for _, r := range strings.ToLower(strings.TrimSpace(email)) {
		hash = hash*31 + int32(r)
	}
	if hash < 0 {
		hash = -hash
	}
	return fmt.Sprintf("tf-v12-%d", hash)
}
