// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// VoteState represents how far an agreement has progressed toward ratification.
type VoteState uint8

const (
	// VoteStateCreated - agreement created, neither party has voted
	VoteStateCreated VoteState = iota
	// VoteStatePartiallyVoted - exactly one party has voted
	VoteStatePartiallyVoted
	// VoteStateFullyVoted - both parties have voted; reveal is permitted
	VoteStateFullyVoted
)

func (s VoteState) String() string {
	switch s {
	case VoteStateCreated:
		return "created"
	case VoteStatePartiallyVoted:
		return "partially_voted"
	case VoteStateFullyVoted:
		return "fully_voted"
	default:
		return "unknown"
	}
}

// Agreement is the two-party commitment record, keyed by the secret's hash.
// This is the canonical record type shared by the registry and the verifier.
type Agreement struct {
	// Party1 is the identity that created the agreement.
	// A non-zero Party1 is the existence sentinel for the record.
	Party1 Address `json:"party1"`

	// Party2 is the counterparty named at creation
	Party2 Address `json:"party2"`

	// Party1Voted is true once Party1 has ratified the commitment
	Party1Voted bool `json:"party1Voted"`

	// Party2Voted is true once Party2 has ratified the commitment
	Party2Voted bool `json:"party2Voted"`
}

// Exists returns true if the record is present, i.e. Party1 is non-zero.
func (a Agreement) Exists() bool {
	return !a.Party1.Zero()
}

// IsParty returns true if addr is one of the two registered parties.
func (a Agreement) IsParty(addr Address) bool {
	return addr == a.Party1 || addr == a.Party2
}

// Accepted returns true once both parties have voted.
func (a Agreement) Accepted() bool {
	return a.Party1Voted && a.Party2Voted
}

// State returns the agreement's position in the voting lifecycle.
func (a Agreement) State() VoteState {
	switch {
	case a.Party1Voted && a.Party2Voted:
		return VoteStateFullyVoted
	case a.Party1Voted || a.Party2Voted:
		return VoteStatePartiallyVoted
	default:
		return VoteStateCreated
	}
}
