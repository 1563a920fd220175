// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package protocol implements the two-party commit-reveal agreement protocol:
// the agreement registry, the reveal verifier, and the disclosure event bus.
package protocol

import (
	"github.com/leeftk/signing-secrets/core"
)

// signedMessagePrefix is prepended to the commitment before hashing for
// signature recovery, so a reveal signature can never be confused with a
// signature over arbitrary 32-byte data.
//
// The prefix covers the bare commitment only; replay protection is scoped
// to a single execution domain. Mix a domain identifier in here if the
// protocol ever spans more than one.
const signedMessagePrefix = "\x19Ethereum Signed Message:\n32"

// SigningDigest returns the digest a party signs to authorize revealing the
// secret committed to by secretHash. Note it is computed from the commitment,
// never from the plaintext.
func SigningDigest(secretHash core.ID) core.ID {
	return core.HashMulti([]byte(signedMessagePrefix), secretHash[:])
}
