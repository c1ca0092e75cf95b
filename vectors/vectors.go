// Package vectors ships the cross-implementation conformance suite. Every
// implementation of the canonical form, whatever the language, must produce
// these exact canonical bytes and digests; the embedded suite is the contract.
package vectors

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ai-constitution/canonical-go/canonicaljson"
	"github.com/ai-constitution/canonical-go/digest"
)

//go:embed suite.json
var embeddedSuite []byte

// Vector is one conformance case: an arbitrary JSON document, its unique
// canonical form, and the hex SHA-256 of the canonical bytes.
type Vector struct {
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	Canonical string          `json:"canonical"`
	SHA256    string          `json:"sha256"`
}

// Default returns the embedded suite.
func Default() ([]Vector, error) {
	return Load(bytes.NewReader(embeddedSuite))
}

// Load reads a suite from r.
func Load(r io.Reader) ([]Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	var vs []Vector
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	for i, v := range vs {
		if v.Name == "" {
			return nil, fmt.Errorf("parse suite: vector %d has no name", i)
		}
		if len(v.Input) == 0 || v.Canonical == "" || v.SHA256 == "" {
			return nil, fmt.Errorf("parse suite: vector %q is incomplete", v.Name)
		}
	}
	return vs, nil
}

// Check canonicalizes the vector's input and compares both the canonical
// bytes and the digest against the recorded expectations.
func Check(v Vector) error {
	canonical, err := canonicaljson.CanonicalizeRaw(v.Input)
	if err != nil {
		return fmt.Errorf("vector %q: %w", v.Name, err)
	}
	if string(canonical) != v.Canonical {
		return fmt.Errorf("vector %q: canonical form %s, want %s", v.Name, canonical, v.Canonical)
	}
	sum, err := digest.HashRaw(v.Input)
	if err != nil {
		return fmt.Errorf("vector %q: %w", v.Name, err)
	}
	if sum != v.SHA256 {
		return fmt.Errorf("vector %q: digest %s, want %s", v.Name, sum, v.SHA256)
	}
	return nil
}

// CheckAll runs every vector and reports the first failure.
func CheckAll(vs []Vector) error {
	for _, v := range vs {
		if err := Check(v); err != nil {
			return err
		}
	}
	return nil
}
