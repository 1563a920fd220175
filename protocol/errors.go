// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import "errors"

var (
	// ErrAgreementAlreadyExists - creation attempted at an occupied secret hash
	ErrAgreementAlreadyExists = errors.New("agreement already exists")

	// ErrNotPartyToAgreement - caller or recovered signer is not one of the
	// two registered parties; also covers the nonexistent-agreement case
	ErrNotPartyToAgreement = errors.New("you are not part of party")

	// ErrAgreementNotAccepted - reveal attempted before both parties voted
	ErrAgreementNotAccepted = errors.New("agreement has not been accepted")

	// ErrInvalidSignature - signature fails recovery or was already consumed
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidSecret - revealed plaintext does not hash to the commitment
	ErrInvalidSecret = errors.New("invalid secret")
)
