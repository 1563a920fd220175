// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"github.com/leeftk/signing-secrets/core"
)

// Disclosure is emitted when a secret is successfully revealed.
type Disclosure struct {
	// Revealer is the party that revealed the secret
	Revealer core.Address

	// Secret is the revealed plaintext
	Secret []byte
}

// Bus delivers disclosure events to a subscriber over a buffered channel.
// Publish never blocks; events are dropped on backpressure.
type Bus struct {
	pub chan Disclosure
}

// NewBus creates an event bus with the given buffer size.
func NewBus(size int) *Bus {
	if size <= 0 {
		size = 128
	}
	return &Bus{pub: make(chan Disclosure, size)}
}

// Publish delivers an event to the subscriber, dropping it if the buffer
// is full.
func (b *Bus) Publish(ev Disclosure) {
	select {
	case b.pub <- ev:
	default: // drop on backpressure
	}
}

// Subscribe returns the receive channel for disclosure events.
func (b *Bus) Subscribe() <-chan Disclosure {
	return b.pub
}
