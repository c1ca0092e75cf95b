// Package archive holds the value types committed to the Immutable Archive
// (CRMS records, archive entries, contract proposals) together with their
// validation rules and semantic-hash reproduction. The archive itself —
// ledger storage and its HTTP API — is an external collaborator; this
// package only implements the pure checks a gatekeeper or auditor runs
// before and after commitment.
package archive

import (
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/sha3"
)

// Action classifications (crms_format v2.1).
const (
	ActionEasilyReversible    = "EASILY_REVERSIBLE"
	ActionPartiallyReversible = "PARTIALLY_REVERSIBLE"
	ActionIrreversible        = "IRREVERSIBLE"
)

// Consensus statuses.
const (
	ConsensusPending    = "PENDING"
	ConsensusReached    = "REACHED"
	ConsensusOverridden = "OVERRIDDEN"
)

// Agent votes.
const (
	VoteSupport = "SUPPORT"
	VoteOppose  = "OPPOSE"
	VoteAbstain = "ABSTAIN"
)

// Pinned identifier and hash formats. State hashes are SHA3-256 rendered as
// 0x-prefixed hex; the semantic content hash uses the same rendering.
var (
	hashPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	recordIDPattern = regexp.MustCompile(`^CRMS-\d{8}-[0-9a-fA-F-]+$`)
)

// StateHash computes the 0x-prefixed SHA3-256 state hash of a serialized
// state snapshot. Pre- and post-state hashes in records and entries use
// this exact rendering.
func StateHash(data []byte) string {
	h := sha3.Sum256(data)
	return "0x" + hex.EncodeToString(h[:])
}
