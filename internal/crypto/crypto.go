// Package crypto provides ed25519 signing and verification plus the strict
// base64 encodings used for agent keys and signatures in OCP envelopes.
package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
)

// DecodePubKey decodes a standard base64 (RFC 4648 §4) public key string
// and validates it is exactly 32 bytes.
func DecodePubKey(s string) (ed25519.PublicKey, error) {
	b, err := decodeStdBase64(s)
	if err != nil {
		return nil, fmt.Errorf("pubkey: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("pubkey: expected %d bytes, got %d", ed25519.PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}

// DecodeSignature decodes a standard base64 (RFC 4648 §4) signature string
// and validates it is exactly 64 bytes.
func DecodeSignature(s string) ([]byte, error) {
	b, err := decodeStdBase64(s)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	if len(b) != ed25519.SignatureSize {
		return nil, fmt.Errorf("signature: expected %d bytes, got %d", ed25519.SignatureSize, len(b))
	}
	return b, nil
}

// EncodePubKey renders a public key as standard base64 for the signer block.
func EncodePubKey(pub ed25519.PublicKey) string {
	return base64.StdEncoding.EncodeToString(pub)
}

// SignEd25519 signs message and returns the standard-base64 signature.
func SignEd25519(priv ed25519.PrivateKey, message []byte) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(priv, message))
}

// VerifyEd25519 verifies an ed25519 signature over message bytes.
func VerifyEd25519(pubkey ed25519.PublicKey, message, sig []byte) bool {
	return ed25519.Verify(pubkey, message, sig)
}

// decodeStdBase64 decodes standard base64 (RFC 4648 §4 with '=' padding).
// URL-safe base64 is NOT accepted.
func decodeStdBase64(s string) ([]byte, error) {
	// Reject URL-safe base64 characters
	for _, c := range s {
		if c == '-' || c == '_' {
			return nil, fmt.Errorf("invalid base64: url-safe characters not allowed")
		}
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return b, nil
}
