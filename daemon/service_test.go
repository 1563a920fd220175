// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package daemon

import (
	"errors"
	"io"
	"testing"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/leeftk/signing-secrets/core"
	"github.com/leeftk/signing-secrets/crypto"
	"github.com/leeftk/signing-secrets/protocol"
)

func newTestService(t *testing.T, metrics *Metrics) *Service {
	t.Helper()

	config := DefaultConfig()
	config.Logger = log.NewWriter(io.Discard)
	config.Metrics = metrics

	service := New(config)
	t.Cleanup(func() { service.Close() })
	return service
}

func TestServiceFullFlow(t *testing.T) {
	service := newTestService(t, nil)

	alice, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}

	secret := []byte("Secret Message")
	secretHash := core.Hash(secret)

	if err := service.CreateAgreement(alice.Address, secretHash, bob.Address); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := service.AgreeToSecret(alice.Address, secretHash); err != nil {
		t.Fatalf("alice vote failed: %v", err)
	}
	if err := service.AgreeToSecret(bob.Address, secretHash); err != nil {
		t.Fatalf("bob vote failed: %v", err)
	}

	sig := bob.Sign(protocol.SigningDigest(secretHash))
	if err := service.RevealSecret(bob.Address, secretHash, secret, sig); err != nil {
		t.Fatalf("reveal failed: %v", err)
	}

	select {
	case ev := <-service.Disclosures():
		if ev.Revealer != bob.Address {
			t.Errorf("event revealer = %s, want %s", ev.Revealer, bob.Address)
		}
		if string(ev.Secret) != string(secret) {
			t.Errorf("event secret = %q, want %q", ev.Secret, secret)
		}
	default:
		t.Error("expected a disclosure event")
	}

	agreement, err := service.Agreement(secretHash)
	if err != nil {
		t.Fatal(err)
	}
	if agreement.Exists() {
		t.Error("agreement should be deleted after reveal")
	}

	used, err := service.SignatureUsed(crypto.SignatureDigest(sig))
	if err != nil || !used {
		t.Error("signature should be consumed")
	}
}

func TestServiceMetrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	service := newTestService(t, metrics)

	alice, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}

	secretHash := core.Hash([]byte("Secret Message"))

	if err := service.CreateAgreement(alice.Address, secretHash, bob.Address); err != nil {
		t.Fatal(err)
	}
	err = service.CreateAgreement(alice.Address, secretHash, bob.Address)
	if !errors.Is(err, protocol.ErrAgreementAlreadyExists) {
		t.Fatalf("expected ErrAgreementAlreadyExists, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.ops.WithLabelValues(opCreate, "ok")); got != 1 {
		t.Errorf("create ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.ops.WithLabelValues(opCreate, protocol.ErrAgreementAlreadyExists.Error())); got != 1 {
		t.Errorf("create failure count = %v, want 1", got)
	}
}

func TestServiceNilConfig(t *testing.T) {
	service := New(nil)
	defer service.Close()

	agreement, err := service.Agreement(core.Hash([]byte("nothing")))
	if err != nil {
		t.Fatal(err)
	}
	if agreement.Exists() {
		t.Error("fresh service should hold no agreements")
	}
}
