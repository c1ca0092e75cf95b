// Package envelope defines the signed wrapper for OCP protocol objects
// (contract proposals, fraud proofs, archive entries, votes) and provides
// validation, signing, and signature verification. Signatures always cover
// the canonical-JSON form of the envelope minus the signature field, so two
// agents restating the same object sign — and verify — identical bytes.
package envelope

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/ai-constitution/canonical-go/canonicaljson"
	"github.com/ai-constitution/canonical-go/digest"
	"github.com/ai-constitution/canonical-go/internal/crypto"
	"github.com/ai-constitution/canonical-go/internal/ethutil"
)

// ObjectVersion is the CRMS schema version this package speaks.
const ObjectVersion = "2.1"

// ValidObjectTypes enumerates the protocol object types accepted by the
// archive in v2.1.
var ValidObjectTypes = map[string]bool{
	"contract_proposal": true,
	"fraud_proof":       true,
	"archive_entry":     true,
	"vote":              true,
}

// Signer algorithms. AlgoEd25519 carries a standard-base64 32-byte public
// key; AlgoEIP191 carries a lowercase 0x-prefixed Ethereum address.
const (
	AlgoEd25519 = "ed25519"
	AlgoEIP191  = "eip191"
)

var ethAddressPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
var ethSignaturePattern = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

// Signer represents the signer block in an envelope.
type Signer struct {
	Algo   string `json:"algo"`
	PubKey string `json:"pubkey"`
}

// Envelope represents a signed protocol object envelope.
type Envelope struct {
	ObjectType    string          `json:"object_type"`
	ObjectVersion string          `json:"object_version"`
	ObjectID      string          `json:"object_id"`
	CreatedAt     string          `json:"created_at"`
	Payload       json.RawMessage `json:"payload"`
	Signer        Signer          `json:"signer"`
	Signature     string          `json:"signature"`
}

// ValidateBasic checks that all required fields are present, correct types,
// and version/algo match v2.1 expectations.
func (e *Envelope) ValidateBasic() error {
	if !ValidObjectTypes[e.ObjectType] {
		return fmt.Errorf("invalid object_type: %q", e.ObjectType)
	}
	if e.ObjectVersion != ObjectVersion {
		return fmt.Errorf("unsupported object_version: %q", e.ObjectVersion)
	}
	if e.ObjectID == "" {
		return fmt.Errorf("object_id is required")
	}
	if e.CreatedAt == "" {
		return fmt.Errorf("created_at is required")
	}
	if _, err := time.Parse(time.RFC3339, e.CreatedAt); err != nil {
		if _, err2 := time.Parse(time.RFC3339Nano, e.CreatedAt); err2 != nil {
			return fmt.Errorf("created_at is not valid RFC3339: %w", err)
		}
	}
	if len(e.Payload) == 0 {
		return fmt.Errorf("payload is required")
	}
	// Ensure payload is a JSON object
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(e.Payload, &obj); err != nil {
		return fmt.Errorf("payload must be a JSON object: %w", err)
	}
	if e.Signature == "" {
		return fmt.Errorf("signature is required")
	}

	switch e.Signer.Algo {
	case AlgoEd25519:
		if _, err := crypto.DecodePubKey(e.Signer.PubKey); err != nil {
			return fmt.Errorf("signer.pubkey: %w", err)
		}
		if _, err := crypto.DecodeSignature(e.Signature); err != nil {
			return fmt.Errorf("signature: %w", err)
		}
	case AlgoEIP191:
		if !ethAddressPattern.MatchString(e.Signer.PubKey) {
			return fmt.Errorf("signer.pubkey: not a lowercase 0x address: %q", e.Signer.PubKey)
		}
		if !ethSignaturePattern.MatchString(e.Signature) {
			return fmt.Errorf("signature: not a 0x-prefixed 65-byte hex signature")
		}
	default:
		return fmt.Errorf("unsupported signer.algo: %q", e.Signer.Algo)
	}

	return nil
}

// SignedPreimageBytes returns the canonical JSON bytes of the envelope
// with the signature field removed, suitable for signing and verification.
func (e *Envelope) SignedPreimageBytes() ([]byte, error) {
	// Build a map without the signature field
	m := map[string]any{
		"object_type":    e.ObjectType,
		"object_version": e.ObjectVersion,
		"object_id":      e.ObjectID,
		"created_at":     e.CreatedAt,
		"payload":        json.RawMessage(e.Payload),
		"signer": map[string]any{
			"algo":   e.Signer.Algo,
			"pubkey": e.Signer.PubKey,
		},
	}
	return canonicaljson.Canonicalize(m)
}

// SignEd25519 fills the signer block from priv's public key and signs the
// canonical preimage.
func (e *Envelope) SignEd25519(priv ed25519.PrivateKey) error {
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return fmt.Errorf("sign: not an ed25519 key")
	}
	e.Signer = Signer{Algo: AlgoEd25519, PubKey: crypto.EncodePubKey(pub)}
	preimage, err := e.SignedPreimageBytes()
	if err != nil {
		return fmt.Errorf("sign: preimage: %w", err)
	}
	e.Signature = crypto.SignEd25519(priv, preimage)
	return nil
}

// SignEIP191 fills the signer block with the key's lowercase address and
// signs the canonical preimage with EIP-191 personal_sign.
func (e *Envelope) SignEIP191(key *ecdsa.PrivateKey) error {
	e.Signer = Signer{Algo: AlgoEIP191, PubKey: ethutil.AddressFromKey(key)}
	preimage, err := e.SignedPreimageBytes()
	if err != nil {
		return fmt.Errorf("sign: preimage: %w", err)
	}
	sig, err := ethutil.SignPersonalSign(preimage, key)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	e.Signature = sig
	return nil
}

// Verify performs full signature verification for the envelope's signer
// algorithm: computes the signing preimage and checks the signature against
// the signer's key or address.
func (e *Envelope) Verify() error {
	preimage, err := e.SignedPreimageBytes()
	if err != nil {
		return fmt.Errorf("verify: preimage: %w", err)
	}

	switch e.Signer.Algo {
	case AlgoEd25519:
		pubkey, err := crypto.DecodePubKey(e.Signer.PubKey)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		sig, err := crypto.DecodeSignature(e.Signature)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !crypto.VerifyEd25519(pubkey, preimage, sig) {
			return fmt.Errorf("verify: ed25519 signature verification failed")
		}
		return nil
	case AlgoEIP191:
		if err := ethutil.VerifyPersonalSign(preimage, e.Signature, e.Signer.PubKey); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("verify: unsupported signer.algo: %q", e.Signer.Algo)
	}
}

// ContentHash returns the protocol digest of the payload.
func (e *Envelope) ContentHash() (string, error) {
	return digest.HashRaw(e.Payload)
}

// OffendingRecordID extracts the offending_record_id field from a
// fraud_proof payload, if present.
func (e *Envelope) OffendingRecordID() (string, bool) {
	var p struct {
		OffendingRecordID string `json:"offending_record_id"`
	}
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return "", false
	}
	if p.OffendingRecordID == "" {
		return "", false
	}
	return p.OffendingRecordID, true
}
