package archive

import (
	"strings"
	"testing"
)

func validRecord() *Record {
	return &Record{
		RecordID:             "CRMS-20260830-0a1b2c3d",
		Version:              "2.1",
		Timestamp:            "2026-08-30T18:30:00Z",
		AgentID:              "GEMINI",
		AgentDomain:          "TECHNICAL_VERIFICATION",
		ActionClassification: ActionEasilyReversible,
		TransactionState: TransactionState{
			PreStateHash:        StateHash([]byte("state-v1")),
			PostStateHash:       StateHash([]byte("state-v2")),
			SemanticHashContent: "0x0790abbbb0bcf09904f2fac89f17bb15ffa5ed9f1356a86903c2d273ea2bbeab",
		},
		DeliberationStatus: DeliberationStatus{
			ProposalID:              "UTILITY-TASK-005",
			ConstitutionalCitations: []string{"Article III.4", "Article IV.1"},
			ConsensusStatus:         ConsensusReached,
			AgentVote:               VoteSupport,
			HumanOverrideCitation:   "NONE",
		},
		AuditData: AuditData{
			ReputationIndex:        map[string]float64{"R_d": 0.99, "V_d": 0.005},
			CryptographicSignature: "c2lnbmF0dXJlLXBsYWNlaG9sZGVy",
		},
		EvidenceSubmitted: []string{"ARCHIVE/LOG/UTILITY-TASK-005-EVIDENCE"},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("expected valid record, got: %v", err)
	}
}

func TestValidate_BadRecordID(t *testing.T) {
	r := validRecord()
	r.RecordID = "RECORD-001"
	err := r.Validate()
	if err == nil {
		t.Fatal("expected error for record_id format")
	}
	if !strings.Contains(err.Error(), "record_id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_BadTimestamp(t *testing.T) {
	r := validRecord()
	r.Timestamp = "30/08/2026 18:30"
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for timestamp format")
	}
}

func TestValidate_BadStateHash(t *testing.T) {
	r := validRecord()
	r.TransactionState.PreStateHash = "0xAA11...C1"
	err := r.Validate()
	if err == nil {
		t.Fatal("expected error for truncated state hash")
	}
	if !strings.Contains(err.Error(), "pre_state_hash") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_BadEnums(t *testing.T) {
	r := validRecord()
	r.ActionClassification = "MAYBE_REVERSIBLE"
	r.DeliberationStatus.AgentVote = "YES"
	err := r.Validate()
	if err == nil {
		t.Fatal("expected errors for enum values")
	}
	msg := err.Error()
	if !strings.Contains(msg, "action_classification") || !strings.Contains(msg, "agent_vote") {
		t.Errorf("expected both enum violations reported, got: %v", err)
	}
}

func TestValidate_OverrideRules(t *testing.T) {
	r := validRecord()
	r.DeliberationStatus.ConsensusStatus = ConsensusOverridden
	if err := r.Validate(); err == nil {
		t.Fatal("expected error: OVERRIDDEN without an override citation")
	}

	r.DeliberationStatus.HumanOverrideCitation = "Article VII.2"
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid overridden record, got: %v", err)
	}

	r.DeliberationStatus.ConsensusStatus = ConsensusReached
	if err := r.Validate(); err == nil {
		t.Fatal("expected error: override citation without OVERRIDDEN consensus")
	}
}

func TestValidate_ReputationRange(t *testing.T) {
	r := validRecord()
	r.AuditData.ReputationIndex["R_d"] = 1.5
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for reputation out of range")
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	r := &Record{}
	err := r.Validate()
	if err == nil {
		t.Fatal("expected violations for empty record")
	}
	msg := err.Error()
	for _, want := range []string{"record_id", "agent_id", "evidence_submitted", "consensus_status"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected violation mentioning %q, got: %v", want, err)
		}
	}
}
