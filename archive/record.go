package archive

import (
	"errors"
	"fmt"
	"time"
)

// TransactionState carries the state-transition hashes of a record.
type TransactionState struct {
	PreStateHash        string `json:"pre_state_hash"`
	PostStateHash       string `json:"post_state_hash"`
	SemanticHashContent string `json:"semantic_hash_content"`
}

// DeliberationStatus records the consensus outcome behind an action.
type DeliberationStatus struct {
	ProposalID              string   `json:"proposal_id"`
	ConstitutionalCitations []string `json:"constitutional_citations"`
	ConsensusStatus         string   `json:"consensus_status"`
	AgentVote               string   `json:"agent_vote"`
	HumanOverrideCitation   string   `json:"human_override_citation"`
}

// AuditData carries reputation figures and the agent's signature.
type AuditData struct {
	ReputationIndex        map[string]float64 `json:"reputation_index"`
	CryptographicSignature string             `json:"cryptographic_signature"`
}

// Record is a CRMS v2.1 record as submitted for commitment to the archive.
type Record struct {
	RecordID             string             `json:"record_id"`
	Version              string             `json:"version"`
	Timestamp            string             `json:"timestamp"`
	AgentID              string             `json:"agent_id"`
	AgentDomain          string             `json:"agent_domain"`
	ActionClassification string             `json:"action_classification"`
	TransactionState     TransactionState   `json:"transaction_state"`
	DeliberationStatus   DeliberationStatus `json:"deliberation_status"`
	AuditData            AuditData          `json:"audit_data"`
	EvidenceSubmitted    []string           `json:"evidence_submitted"`
}

var validActionClasses = map[string]bool{
	ActionEasilyReversible:    true,
	ActionPartiallyReversible: true,
	ActionIrreversible:        true,
}

var validConsensusStatuses = map[string]bool{
	ConsensusPending:    true,
	ConsensusReached:    true,
	ConsensusOverridden: true,
}

var validVotes = map[string]bool{
	VoteSupport: true,
	VoteOppose:  true,
	VoteAbstain: true,
}

// Validate checks the record against the CRMS v2.1 format rules: required
// structure, pinned identifier and hash formats, enum membership, and the
// dependency rules between deliberation fields. All violations are
// collected and returned joined, not just the first.
func (r *Record) Validate() error {
	var violations []error

	report := func(format string, args ...any) {
		violations = append(violations, fmt.Errorf(format, args...))
	}

	// Structure.
	if r.RecordID == "" {
		report("missing required field: record_id")
	}
	if r.Version == "" {
		report("missing required field: version")
	}
	if r.Timestamp == "" {
		report("missing required field: timestamp")
	}
	if r.AgentID == "" {
		report("missing required field: agent_id")
	}
	if r.AgentDomain == "" {
		report("missing required field: agent_domain")
	}
	if len(r.EvidenceSubmitted) == 0 {
		report("missing required field: evidence_submitted")
	}
	if r.AuditData.CryptographicSignature == "" {
		report("missing required field: audit_data.cryptographic_signature")
	}

	// Formats.
	if r.RecordID != "" && !recordIDPattern.MatchString(r.RecordID) {
		report("invalid record_id format: %q", r.RecordID)
	}
	if r.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
			report("invalid timestamp, must be ISO 8601: %q", r.Timestamp)
		}
	}
	for name, h := range map[string]string{
		"pre_state_hash":        r.TransactionState.PreStateHash,
		"post_state_hash":       r.TransactionState.PostStateHash,
		"semantic_hash_content": r.TransactionState.SemanticHashContent,
	} {
		if !hashPattern.MatchString(h) {
			report("invalid %s, must be 0x-prefixed 32-byte hex: %q", name, h)
		}
	}

	// Enums.
	if !validActionClasses[r.ActionClassification] {
		report("invalid action_classification: %q", r.ActionClassification)
	}
	if !validConsensusStatuses[r.DeliberationStatus.ConsensusStatus] {
		report("invalid consensus_status: %q", r.DeliberationStatus.ConsensusStatus)
	}
	if !validVotes[r.DeliberationStatus.AgentVote] {
		report("invalid agent_vote: %q", r.DeliberationStatus.AgentVote)
	}

	// Dependency rules.
	if len(r.DeliberationStatus.ConstitutionalCitations) == 0 {
		report("deliberation requires at least one constitutional citation")
	}
	override := r.DeliberationStatus.HumanOverrideCitation
	switch r.DeliberationStatus.ConsensusStatus {
	case ConsensusOverridden:
		if override == "" || override == "NONE" {
			report("consensus_status OVERRIDDEN requires a human_override_citation")
		}
	case ConsensusPending, ConsensusReached:
		if override != "" && override != "NONE" {
			report("human_override_citation set without OVERRIDDEN consensus: %q", override)
		}
	}
	for k, v := range r.AuditData.ReputationIndex {
		if v < 0 || v > 1 {
			report("reputation_index[%s] out of range [0,1]: %v", k, v)
		}
	}

	return errors.Join(violations...)
}
