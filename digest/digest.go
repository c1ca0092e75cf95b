// Package digest derives and checks the protocol digest of a JSON value:
// SHA-256 over the UTF-8 bytes of the canonical form, rendered as 64
// lowercase hex characters. The canonical-form/SHA-256/lowercase-hex pairing
// is the only compatibility contract between implementations.
package digest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ai-constitution/canonical-go/canonicaljson"
)

// Algorithm identifies the fixed hash function of the wire contract.
const Algorithm = "sha256"

// Hash canonicalizes v and returns the lowercase hex SHA-256 digest of the
// canonical bytes. It fails only when canonicalization fails.
func Hash(v any) (string, error) {
	canonical, err := canonicaljson.Canonicalize(v)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return sum(canonical), nil
}

// HashRaw is Hash for raw JSON text.
func HashRaw(raw json.RawMessage) (string, error) {
	canonical, err := canonicaljson.CanonicalizeRaw(raw)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return sum(canonical), nil
}

// Verify recomputes the digest of v and compares it byte-for-byte against
// expected. This is an integrity check, not a secret comparison.
func Verify(v any, expected string) (bool, error) {
	actual, err := Hash(v)
	if err != nil {
		return false, err
	}
	return actual == expected, nil
}

// VerifyRaw is Verify for raw JSON text.
func VerifyRaw(raw json.RawMessage, expected string) (bool, error) {
	actual, err := HashRaw(raw)
	if err != nil {
		return false, err
	}
	return actual == expected, nil
}

// CanonicallyEqual reports whether two values have identical canonical
// forms. It fails closed: if either canonicalization fails, the values are
// not equal.
func CanonicallyEqual(a, b any) bool {
	ca, err := canonicaljson.Canonicalize(a)
	if err != nil {
		return false
	}
	cb, err := canonicaljson.Canonicalize(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}

func sum(canonical []byte) string {
	h := sha256.Sum256(canonical)
	return hex.EncodeToString(h[:])
}
