package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"
)

func TestDecodePubKey_Valid(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)

	got, err := DecodePubKey(EncodePubKey(pub))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(got))
	}
}

func TestDecodePubKey_WrongLength(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("tooshort"))
	_, err := DecodePubKey(b64)
	if err == nil {
		t.Error("expected error for wrong length")
	}
}

func TestDecodePubKey_URLSafeBase64Rejected(t *testing.T) {
	_, err := DecodePubKey("abc-def_ghi=")
	if err == nil {
		t.Error("expected error for URL-safe base64")
	}
}

func TestDecodeSignature_WrongLength(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString(make([]byte, 32))
	_, err := DecodeSignature(b64)
	if err == nil {
		t.Error("expected error for wrong length")
	}
}

func TestSignEd25519_RoundTrip(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	msg := []byte(`{"action":"propose","value":42}`)

	sigB64 := SignEd25519(priv, msg)
	sig, err := DecodeSignature(sigB64)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	if !VerifyEd25519(pub, msg, sig) {
		t.Error("expected signature to verify")
	}
}

func TestVerifyEd25519_Invalid(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)
	msg := []byte("test message")
	sig := make([]byte, 64)

	if VerifyEd25519(pub, msg, sig) {
		t.Error("expected invalid signature to fail verification")
	}
}
