// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage provides storage for agreement records and the
// used-signature set. The default backend is in-memory; the protocol keeps
// no state beyond the lifetime of an agreement.
package storage

import (
	"errors"

	"github.com/leeftk/signing-secrets/core"
)

var (
	// ErrNotFound is returned when a key is not found.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned when the store is closed.
	ErrClosed = errors.New("store closed")
)

// Store is the core key-value storage interface.
type Store interface {
	// Get retrieves a value by key.
	Get(key []byte) ([]byte, error)

	// Put stores a value by key.
	Put(key, value []byte) error

	// Delete removes a key.
	Delete(key []byte) error

	// Has checks if a key exists.
	Has(key []byte) (bool, error)

	// Close closes the store.
	Close() error
}

// Namespace prefixes keys for logical separation.
type Namespace struct {
	prefix []byte
	store  Store
}

// NewNamespace creates a namespaced view of a store.
func NewNamespace(store Store, prefix []byte) *Namespace {
	return &Namespace{
		prefix: prefix,
		store:  store,
	}
}

func (n *Namespace) prefixKey(key []byte) []byte {
	prefixed := make([]byte, len(n.prefix)+len(key))
	copy(prefixed, n.prefix)
	copy(prefixed[len(n.prefix):], key)
	return prefixed
}

// Get retrieves a value by key.
func (n *Namespace) Get(key []byte) ([]byte, error) {
	return n.store.Get(n.prefixKey(key))
}

// Put stores a value by key.
func (n *Namespace) Put(key, value []byte) error {
	return n.store.Put(n.prefixKey(key), value)
}

// Delete removes a key.
func (n *Namespace) Delete(key []byte) error {
	return n.store.Delete(n.prefixKey(key))
}

// Has checks if a key exists.
func (n *Namespace) Has(key []byte) (bool, error) {
	return n.store.Has(n.prefixKey(key))
}

// Close closes the underlying store.
func (n *Namespace) Close() error {
	return n.store.Close()
}

// Storage namespaces (prefixes).
var (
	PrefixAgreement = []byte("agreement:")
	PrefixUsedSig   = []byte("usedsig:")
)

// AgreementStore provides agreement-specific storage operations,
// keyed by the secret's hash.
type AgreementStore struct {
	store Store
	codec *BinaryCodec
}

// NewAgreementStore creates a new agreement store.
func NewAgreementStore(store Store) *AgreementStore {
	return &AgreementStore{
		store: NewNamespace(store, PrefixAgreement),
		codec: NewBinaryCodec(),
	}
}

// Get retrieves an agreement by secret hash.
func (s *AgreementStore) Get(secretHash core.ID) (core.Agreement, error) {
	data, err := s.store.Get(secretHash[:])
	if err != nil {
		return core.Agreement{}, err
	}
	return s.codec.DecodeAgreement(data)
}

// Put stores an agreement under its secret hash.
func (s *AgreementStore) Put(secretHash core.ID, agreement core.Agreement) error {
	data, err := s.codec.EncodeAgreement(agreement)
	if err != nil {
		return err
	}
	return s.store.Put(secretHash[:], data)
}

// Delete removes an agreement.
func (s *AgreementStore) Delete(secretHash core.ID) error {
	return s.store.Delete(secretHash[:])
}

// Has checks if an agreement exists.
func (s *AgreementStore) Has(secretHash core.ID) (bool, error) {
	return s.store.Has(secretHash[:])
}

// UsedSignatureStore records signature digests consumed by successful
// reveals. The set is append-only; entries are never removed.
type UsedSignatureStore struct {
	store Store
}

// NewUsedSignatureStore creates a new used-signature store.
func NewUsedSignatureStore(store Store) *UsedSignatureStore {
	return &UsedSignatureStore{
		store: NewNamespace(store, PrefixUsedSig),
	}
}

// Add marks a signature digest as consumed.
func (s *UsedSignatureStore) Add(sigDigest core.ID) error {
	return s.store.Put(sigDigest[:], []byte{1})
}

// Has checks whether a signature digest has been consumed.
func (s *UsedSignatureStore) Has(sigDigest core.ID) (bool, error) {
	return s.store.Has(sigDigest[:])
}
