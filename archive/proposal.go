package archive

import (
	"fmt"

	"github.com/ai-constitution/canonical-go/digest"
)

// ContractProposal is an OCP contract proposal. Its semantic hash is
// computed over the struct's canonical JSON form; the proposer's signature
// lives in the surrounding envelope, not in the hashed object.
type ContractProposal struct {
	ID                 string              `json:"id"`
	ProposerAgent      string              `json:"proposer_agent"`
	ActionType         string              `json:"action_type"`
	Action             map[string]any      `json:"action"`
	Evidence           []map[string]string `json:"evidence"`
	Reasoning          map[string]any      `json:"reasoning"`
	ReversibilityClass string              `json:"reversibility_class"`
	PreStateHash       string              `json:"pre_state_hash"`
	PostStateHash      string              `json:"post_state_hash"`
	Timestamp          string              `json:"timestamp"`
	ReputationStake    int                 `json:"reputation_stake"`
}

// Hash returns the semantic hash of the proposal.
func (p *ContractProposal) Hash() (string, error) {
	h, err := digest.Hash(p)
	if err != nil {
		return "", fmt.Errorf("archive: proposal hash: %w", err)
	}
	return h, nil
}

// VerifyHash reports whether the proposal reproduces the expected hash.
func (p *ContractProposal) VerifyHash(expected string) (bool, error) {
	h, err := p.Hash()
	if err != nil {
		return false, err
	}
	return h == expected, nil
}
