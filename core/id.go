// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package core provides the shared primitive types for the agreement layer:
// digests, identities, and the agreement record itself.
package core

import (
	"golang.org/x/crypto/sha3"
)

// ID is a 32-byte digest used throughout the agreement layer.
// Secret commitments, signing digests, and signature identifiers are all IDs.
type ID [32]byte

// Empty returns true if the ID is all zeros.
func (id ID) Empty() bool {
	return id == ID{}
}

// Bytes returns the ID as a byte slice.
func (id ID) Bytes() []byte {
	return id[:]
}

// String returns a hex representation of the ID.
func (id ID) String() string {
	const hexChars = "0123456789abcdef"
	result := make([]byte, 64)
	for i, b := range id {
		result[i*2] = hexChars[b>>4]
		result[i*2+1] = hexChars[b&0x0f]
	}
	return string(result)
}

// IDFromBytes creates an ID from a byte slice.
func IDFromBytes(b []byte) ID {
	var id ID
	copy(id[:], b)
	return id
}

// Hash computes the Keccak-256 hash of the input and returns it as an ID.
// Keccak-256 keeps commitments compatible with digests produced by EVM tooling.
func Hash(data []byte) ID {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var result ID
	copy(result[:], h.Sum(nil))
	return result
}

// HashMulti computes a Keccak-256 hash over multiple byte slices.
func HashMulti(parts ...[]byte) ID {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var result ID
	copy(result[:], h.Sum(nil))
	return result
}
