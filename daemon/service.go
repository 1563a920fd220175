// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package daemon wires the agreement registry and reveal verifier into a
// single in-process service with structured logging and operation counters.
// There is no listener here: transport is out of scope for the protocol.
package daemon

import (
	"github.com/luxfi/log"

	"github.com/leeftk/signing-secrets/core"
	"github.com/leeftk/signing-secrets/crypto"
	"github.com/leeftk/signing-secrets/protocol"
	"github.com/leeftk/signing-secrets/storage"
)

// Config holds the service configuration.
type Config struct {
	// EventBufferSize is the disclosure bus buffer size
	EventBufferSize int

	// Recoverer recovers signer addresses from reveal signatures
	Recoverer crypto.Recoverer

	// Logger receives operation logs
	Logger log.Logger

	// Metrics receives operation counters; nil disables registration
	Metrics *Metrics
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() *Config {
	return &Config{
		EventBufferSize: 128,
		Recoverer:       crypto.CompactRecoverer{},
	}
}

// Service exposes the agreement protocol boundary operations.
type Service struct {
	logger   log.Logger
	metrics  *Metrics
	store    *storage.MemoryStore
	registry *protocol.Registry
	verifier *protocol.Verifier
	bus      *protocol.Bus
}

// New creates a new agreement service.
func New(config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New("component", "agreement-service")
	}
	recoverer := config.Recoverer
	if recoverer == nil {
		recoverer = crypto.CompactRecoverer{}
	}

	store := storage.NewMemoryStore()
	registry := protocol.NewRegistry(store)
	bus := protocol.NewBus(config.EventBufferSize)

	return &Service{
		logger:   logger,
		metrics:  config.Metrics,
		store:    store,
		registry: registry,
		verifier: protocol.NewVerifier(registry, store, recoverer, bus),
		bus:      bus,
	}
}

// Close releases the backing store.
func (s *Service) Close() error {
	return s.store.Close()
}

// Disclosures returns the channel of disclosure events.
func (s *Service) Disclosures() <-chan protocol.Disclosure {
	return s.bus.Subscribe()
}

// CreateAgreement registers a new agreement between the caller and party2.
func (s *Service) CreateAgreement(caller core.Address, secretHash core.ID, party2 core.Address) error {
	err := s.registry.CreateAgreement(caller, secretHash, party2)
	if err != nil {
		s.logger.Error("create agreement rejected", "secretHash", secretHash, "caller", caller, "error", err)
		s.metrics.count(opCreate, err)
		return err
	}
	s.logger.Info("agreement created", "secretHash", secretHash, "party1", caller, "party2", party2)
	s.metrics.count(opCreate, nil)
	return nil
}

// AgreeToSecret records the caller's vote on an agreement.
func (s *Service) AgreeToSecret(caller core.Address, secretHash core.ID) error {
	err := s.registry.AgreeToSecret(caller, secretHash)
	if err != nil {
		s.logger.Error("vote rejected", "secretHash", secretHash, "caller", caller, "error", err)
		s.metrics.count(opVote, err)
		return err
	}
	s.logger.Info("agreement voted", "secretHash", secretHash, "caller", caller)
	s.metrics.count(opVote, nil)
	return nil
}

// RevealSecret discloses the plaintext behind a fully voted agreement.
func (s *Service) RevealSecret(caller core.Address, secretHash core.ID, secret, signature []byte) error {
	err := s.verifier.RevealSecret(caller, secretHash, secret, signature)
	if err != nil {
		s.logger.Error("reveal rejected", "secretHash", secretHash, "caller", caller, "error", err)
		s.metrics.count(opReveal, err)
		return err
	}
	s.logger.Info("secret revealed", "secretHash", secretHash, "revealer", caller)
	s.metrics.count(opReveal, nil)
	return nil
}

// Agreement returns the record at secretHash, or the zero agreement if absent.
func (s *Service) Agreement(secretHash core.ID) (core.Agreement, error) {
	return s.registry.Agreement(secretHash)
}

// SignatureUsed reports whether a signature digest has been consumed.
func (s *Service) SignatureUsed(sigDigest core.ID) (bool, error) {
	return s.verifier.SignatureUsed(sigDigest)
}
