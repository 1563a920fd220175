// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"

	"github.com/leeftk/signing-secrets/core"
)

// agreementRecordSize is the encoded size of an agreement:
// two 20-byte addresses followed by one vote-flag byte.
const agreementRecordSize = 20 + 20 + 1

const (
	flagParty1Voted = 1 << 0
	flagParty2Voted = 1 << 1
)

// BinaryCodec is a simple binary encoder/decoder for agreement records.
type BinaryCodec struct{}

// NewBinaryCodec creates a new binary codec.
func NewBinaryCodec() *BinaryCodec {
	return &BinaryCodec{}
}

// EncodeAgreement encodes an agreement to bytes.
func (c *BinaryCodec) EncodeAgreement(a core.Agreement) ([]byte, error) {
	buf := make([]byte, agreementRecordSize)
	offset := 0

	// Party1
	copy(buf[offset:], a.Party1[:])
	offset += 20

	// Party2
	copy(buf[offset:], a.Party2[:])
	offset += 20

	// Vote flags
	var flags byte
	if a.Party1Voted {
		flags |= flagParty1Voted
	}
	if a.Party2Voted {
		flags |= flagParty2Voted
	}
	buf[offset] = flags

	return buf, nil
}

// DecodeAgreement decodes bytes to an agreement.
func (c *BinaryCodec) DecodeAgreement(data []byte) (core.Agreement, error) {
	if len(data) != agreementRecordSize {
		return core.Agreement{}, errors.New("bad agreement record size")
	}

	a := core.Agreement{}
	offset := 0

	// Party1
	copy(a.Party1[:], data[offset:])
	offset += 20

	// Party2
	copy(a.Party2[:], data[offset:])
	offset += 20

	// Vote flags
	flags := data[offset]
	a.Party1Voted = flags&flagParty1Voted != 0
	a.Party2Voted = flags&flagParty2Voted != 0

	return a, nil
}
