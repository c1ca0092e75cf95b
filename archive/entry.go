package archive

import (
	"fmt"

	"github.com/ai-constitution/canonical-go/digest"
)

// ReadOnlyActionTypes are actions that legitimately leave the state
// unchanged (pre and post hash equal).
var ReadOnlyActionTypes = map[string]bool{
	"query": true,
	"read":  true,
}

// Entry is an archive entry as returned by the ledger. SemanticHash is the
// digest recorded at commit time; the hash-relevant content subset must
// reproduce it exactly or the entry has been altered.
type Entry struct {
	EntryID                string         `json:"entry_id"`
	AgentID                string         `json:"agent_id"`
	ActionType             string         `json:"action_type"`
	Content                map[string]any `json:"content"`
	EvidencePointers       []string       `json:"evidence_pointers"`
	ConstitutionalCitation string         `json:"constitutional_citation"`
	Timestamp              string         `json:"timestamp"`
	PreStateHash           string         `json:"pre_state_hash"`
	PostStateHash          string         `json:"post_state_hash"`
	SemanticHash           string         `json:"semantic_hash"`
	Signature              string         `json:"signature"`
}

// HashContent returns the pinned hash-relevant subset of the entry. Only
// these six fields enter the semantic hash; ledger bookkeeping (entry_id,
// state hashes, the recorded hash itself, the signature) stays out so the
// hash is reproducible from the action alone.
func (e *Entry) HashContent() map[string]any {
	evidence := e.EvidencePointers
	if evidence == nil {
		evidence = []string{}
	}
	return map[string]any{
		"action_type":             e.ActionType,
		"agent_id":                e.AgentID,
		"content":                 e.Content,
		"evidence_pointers":       evidence,
		"constitutional_citation": e.ConstitutionalCitation,
		"timestamp":               e.Timestamp,
	}
}

// ReproduceHash recomputes the semantic hash from the entry's content.
func (e *Entry) ReproduceHash() (string, error) {
	h, err := digest.Hash(e.HashContent())
	if err != nil {
		return "", fmt.Errorf("archive: reproduce hash: %w", err)
	}
	return h, nil
}

// VerifyHash reports whether the recorded semantic hash matches the hash
// reproduced from the entry's content.
func (e *Entry) VerifyHash() (bool, error) {
	reproduced, err := e.ReproduceHash()
	if err != nil {
		return false, err
	}
	return reproduced == e.SemanticHash, nil
}

// CheckCompliance returns the constitutional violations of the entry:
// missing required fields, missing evidence for actions that demand it,
// and malformed citations. An empty slice means compliant.
func (e *Entry) CheckCompliance() []string {
	var violations []string

	for field, val := range map[string]string{
		"action_type":             e.ActionType,
		"agent_id":                e.AgentID,
		"constitutional_citation": e.ConstitutionalCitation,
	} {
		if val == "" {
			violations = append(violations, fmt.Sprintf("missing required field: %s", field))
		}
	}

	switch e.ActionType {
	case "contract_proposal", "fraud_proof":
		if len(e.EvidencePointers) == 0 {
			violations = append(violations, fmt.Sprintf("action type %q requires evidence pointers", e.ActionType))
		}
	}

	if e.ConstitutionalCitation != "" && len(e.ConstitutionalCitation) >= 7 {
		if e.ConstitutionalCitation[:7] != "Article" {
			violations = append(violations, fmt.Sprintf("invalid constitutional citation format: %q", e.ConstitutionalCitation))
		}
	} else if e.ConstitutionalCitation != "" {
		violations = append(violations, fmt.Sprintf("invalid constitutional citation format: %q", e.ConstitutionalCitation))
	}

	return violations
}

// StateTransitionValid reports whether the entry's state hashes describe a
// plausible transition: both present, and changed unless the action is
// read-only.
func (e *Entry) StateTransitionValid() bool {
	if e.PreStateHash == "" || e.PostStateHash == "" {
		return false
	}
	if e.PreStateHash == e.PostStateHash && !ReadOnlyActionTypes[e.ActionType] {
		return false
	}
	return true
}
