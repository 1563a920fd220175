// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"errors"
	"sync"

	"github.com/leeftk/signing-secrets/core"
	"github.com/leeftk/signing-secrets/storage"
)

// Registry owns the mapping from secret hash to agreement record.
// All mutations go through its operations; each operation is a single
// indivisible transition guarded by the registry mutex, which the reveal
// verifier shares.
type Registry struct {
	mu         sync.Mutex
	agreements *storage.AgreementStore
}

// NewRegistry creates a registry backed by the given store.
func NewRegistry(store storage.Store) *Registry {
	return &Registry{
		agreements: storage.NewAgreementStore(store),
	}
}

// CreateAgreement inserts a new agreement between the caller and party2,
// keyed by secretHash. Fails with ErrAgreementAlreadyExists if a record
// already occupies the hash.
//
// No check is made that party2 differs from the caller or is non-zero;
// that is left to caller discipline.
func (r *Registry) CreateAgreement(caller core.Address, secretHash core.ID, party2 core.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.getLocked(secretHash)
	if err != nil {
		return err
	}
	if existing.Exists() {
		return ErrAgreementAlreadyExists
	}

	return r.agreements.Put(secretHash, core.Agreement{
		Party1: caller,
		Party2: party2,
	})
}

// AgreeToSecret records the caller's vote on the agreement at secretHash.
// Fails with ErrNotPartyToAgreement if the caller matches neither registered
// party; a nonexistent agreement fails the same way, since its zero fields
// match nothing. Re-voting sets the flag true again, a harmless no-op.
func (r *Registry) AgreeToSecret(caller core.Address, secretHash core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agreement, err := r.getLocked(secretHash)
	if err != nil {
		return err
	}
	if !agreement.Exists() {
		return ErrNotPartyToAgreement
	}

	switch caller {
	case agreement.Party1:
		agreement.Party1Voted = true
	case agreement.Party2:
		agreement.Party2Voted = true
	default:
		return ErrNotPartyToAgreement
	}

	return r.agreements.Put(secretHash, agreement)
}

// Agreement returns the record at secretHash, or the zero agreement if none
// exists. Absence is not an error; Exists() on the result is the sentinel.
func (r *Registry) Agreement(secretHash core.ID) (core.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(secretHash)
}

// getLocked reads a record, mapping storage misses to the zero agreement.
// Callers must hold r.mu.
func (r *Registry) getLocked(secretHash core.ID) (core.Agreement, error) {
	agreement, err := r.agreements.Get(secretHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return core.Agreement{}, nil
		}
		return core.Agreement{}, err
	}
	return agreement, nil
}

// deleteLocked removes a record. Callers must hold r.mu.
func (r *Registry) deleteLocked(secretHash core.ID) error {
	return r.agreements.Delete(secretHash)
}
