// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto provides the signing identities for the agreement layer.
// Signatures are compact secp256k1 signatures carrying a recovery code, so
// the signer's address can be recovered from the digest and signature alone.
package crypto

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/luxfi/crypto/blake2b"

	"github.com/leeftk/signing-secrets/core"
)

const (
	// CompactSignatureSize is the size of a compact recoverable signature:
	// 1 header byte followed by the 32-byte R and S values.
	CompactSignatureSize = 65
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
)

// Identity is a secp256k1 signing identity.
type Identity struct {
	// Address identifies this signer: the trailing 20 bytes of the
	// Keccak-256 digest of the uncompressed public key.
	Address core.Address

	priv *secp256k1.PrivateKey
}

// GenerateIdentity creates a new signing identity with a fresh keypair.
func GenerateIdentity() (*Identity, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Identity{
		Address: PublicKeyAddress(priv.PubKey()),
		priv:    priv,
	}, nil
}

// Sign produces a compact recoverable signature over the digest.
func (i *Identity) Sign(digest core.ID) []byte {
	return ecdsa.SignCompact(i.priv, digest[:], false)
}

// PublicKeyAddress derives the address for a public key.
func PublicKeyAddress(pub *secp256k1.PublicKey) core.Address {
	// Uncompressed serialization is 0x04 || X || Y; the prefix byte is
	// dropped before hashing.
	ser := pub.SerializeUncompressed()
	digest := core.Hash(ser[1:])
	return core.AddressFromBytes(digest[12:])
}

// Recoverer recovers a signing address from a digest and signature.
// It is injected into the reveal verifier so protocol logic can be tested
// with deterministic fakes.
type Recoverer interface {
	// Recover returns the address that produced the signature over digest.
	Recover(digest core.ID, signature []byte) (core.Address, error)
}

// CompactRecoverer recovers secp256k1 compact signatures.
type CompactRecoverer struct{}

// Recover returns the signing address, or ErrInvalidSignature if the
// signature is malformed or does not recover to a valid public key.
func (CompactRecoverer) Recover(digest core.ID, signature []byte) (core.Address, error) {
	if len(signature) != CompactSignatureSize {
		return core.Address{}, ErrInvalidSignature
	}
	pub, _, err := ecdsa.RecoverCompact(signature, digest[:])
	if err != nil {
		return core.Address{}, ErrInvalidSignature
	}
	return PublicKeyAddress(pub), nil
}

// SignatureDigest computes the Blake2b-256 identifier of raw signature bytes.
// These identifiers key the used-signature set that blocks replays.
func SignatureDigest(signature []byte) core.ID {
	h, _ := blake2b.New256(nil)
	h.Write(signature)
	return core.IDFromBytes(h.Sum(nil))
}
