package archive

import "testing"

func sampleProposal() *ContractProposal {
	return &ContractProposal{
		ID:                 "prop-001",
		ProposerAgent:      "Claude-3",
		ActionType:         "contract_proposal",
		Action:             map[string]any{"amount": 1000, "currency": "USD"},
		Evidence:           []map[string]string{{"kind": "observation", "ptr": "archive://0000001"}},
		Reasoning:          map[string]any{"basis": "Article IV.2"},
		ReversibilityClass: ActionEasilyReversible,
		PreStateHash:       StateHash([]byte("state-v1")),
		PostStateHash:      StateHash([]byte("state-v2")),
		Timestamp:          "2026-08-30T00:00:00Z",
		ReputationStake:    25,
	}
}

func TestProposalHash_KnownVector(t *testing.T) {
	got, err := sampleProposal().Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	want := "5609893f4c99efe7031e327ee5a40efc770e4a80690d344d2e9475e348b3109a"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestProposalVerifyHash(t *testing.T) {
	p := sampleProposal()
	h, err := p.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := p.VerifyHash(h)
	if err != nil {
		t.Fatalf("VerifyHash: %v", err)
	}
	if !ok {
		t.Fatal("expected proposal to verify against its own hash")
	}

	p.ReputationStake = 26
	ok, err = p.VerifyHash(h)
	if err != nil {
		t.Fatalf("VerifyHash: %v", err)
	}
	if ok {
		t.Error("expected changed stake to fail verification")
	}
}

func TestProposalHash_StableAcrossCalls(t *testing.T) {
	p := sampleProposal()
	h1, err := p.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := p.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 != h2 {
		t.Errorf("hash not deterministic: %s != %s", h1, h2)
	}
}
