// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"github.com/leeftk/signing-secrets/core"
	"github.com/leeftk/signing-secrets/crypto"
	"github.com/leeftk/signing-secrets/storage"
)

// Verifier validates reveal requests against the registry and owns the
// used-signature set. It shares the registry mutex so a reveal is one
// indivisible transition with respect to creates and votes.
type Verifier struct {
	registry *Registry
	usedSigs *storage.UsedSignatureStore
	recover  crypto.Recoverer
	bus      *Bus
}

// NewVerifier creates a reveal verifier. The bus may be nil, in which case
// disclosure events are discarded.
func NewVerifier(registry *Registry, store storage.Store, recoverer crypto.Recoverer, bus *Bus) *Verifier {
	return &Verifier{
		registry: registry,
		usedSigs: storage.NewUsedSignatureStore(store),
		recover:  recoverer,
		bus:      bus,
	}
}

// RevealSecret discloses the plaintext behind the commitment at secretHash.
// The checks run in a fixed order, which decides the error surfaced when
// several preconditions fail at once:
//
//  1. caller must be a registered party (covers nonexistent agreements)
//  2. both parties must have voted
//  3. the signature must recover to a registered party
//  4. the signature must not have been consumed before
//  5. the plaintext must hash to the commitment
//
// On success the disclosure event is published, the signature digest is
// added to the used set, and the agreement record is deleted. Any failure
// leaves all state untouched.
func (v *Verifier) RevealSecret(caller core.Address, secretHash core.ID, secret, signature []byte) error {
	computedHash := core.Hash(secret)
	sigDigest := crypto.SignatureDigest(signature)

	v.registry.mu.Lock()
	defer v.registry.mu.Unlock()

	agreement, err := v.registry.getLocked(secretHash)
	if err != nil {
		return err
	}
	if !agreement.Exists() || !agreement.IsParty(caller) {
		return ErrNotPartyToAgreement
	}

	if !agreement.Accepted() {
		return ErrAgreementNotAccepted
	}

	if err := v.verifySignature(secretHash, signature, agreement); err != nil {
		return err
	}

	used, err := v.usedSigs.Has(sigDigest)
	if err != nil {
		return err
	}
	if used {
		return ErrInvalidSignature
	}

	if computedHash != secretHash {
		return ErrInvalidSecret
	}

	if v.bus != nil {
		v.bus.Publish(Disclosure{Revealer: caller, Secret: secret})
	}
	if err := v.usedSigs.Add(sigDigest); err != nil {
		return err
	}
	return v.registry.deleteLocked(secretHash)
}

// verifySignature recovers the signer of a reveal authorization and checks
// it against the agreement's parties. The signed digest is computed from
// the commitment, never from the plaintext.
func (v *Verifier) verifySignature(secretHash core.ID, signature []byte, agreement core.Agreement) error {
	signer, err := v.recover.Recover(SigningDigest(secretHash), signature)
	if err != nil || signer.Zero() {
		return ErrInvalidSignature
	}
	if !agreement.IsParty(signer) {
		return ErrNotPartyToAgreement
	}
	return nil
}

// SignatureUsed reports whether a signature digest has been consumed by a
// successful reveal.
func (v *Verifier) SignatureUsed(sigDigest core.ID) (bool, error) {
	v.registry.mu.Lock()
	defer v.registry.mu.Unlock()
	return v.usedSigs.Has(sigDigest)
}
