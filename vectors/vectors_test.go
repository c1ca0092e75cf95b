package vectors

import (
	"strings"
	"testing"
)

func TestEmbeddedSuite(t *testing.T) {
	vs, err := Default()
	if err != nil {
		t.Fatalf("loading embedded suite: %v", err)
	}
	if len(vs) == 0 {
		t.Fatal("embedded suite is empty")
	}
	for _, v := range vs {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			if err := Check(v); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestLoad_RejectsIncompleteVector(t *testing.T) {
	_, err := Load(strings.NewReader(`[{"name":"x","input":{},"canonical":"{}"}]`))
	if err == nil {
		t.Fatal("expected error for vector without digest")
	}
}

func TestLoad_RejectsMalformedSuite(t *testing.T) {
	_, err := Load(strings.NewReader(`{"not":"an array"}`))
	if err == nil {
		t.Fatal("expected error for non-array suite")
	}
}

func TestCheck_DetectsBadExpectation(t *testing.T) {
	v := Vector{
		Name:      "bad",
		Input:     []byte(`{"a":1}`),
		Canonical: `{"a":2}`,
		SHA256:    strings.Repeat("0", 64),
	}
	if err := Check(v); err == nil {
		t.Fatal("expected mismatch error")
	}
}
