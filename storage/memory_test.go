// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"testing"

	"github.com/leeftk/signing-secrets/core"
)

func testAddress(seed string) core.Address {
	h := core.Hash([]byte(seed))
	return core.AddressFromBytes(h[12:])
}

func TestMemoryStoreBasic(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	key := []byte("key")
	value := []byte("value")

	if err := store.Put(key, value); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("got %q, want %q", got, value)
	}

	has, err := store.Has(key)
	if err != nil || !has {
		t.Error("key should exist")
	}

	if err := store.Delete(key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(key); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	store := NewMemoryStore()
	store.Close()

	if err := store.Put([]byte("k"), []byte("v")); err != ErrClosed {
		t.Errorf("put on closed store: got %v, want ErrClosed", err)
	}
	if _, err := store.Get([]byte("k")); err != ErrClosed {
		t.Errorf("get on closed store: got %v, want ErrClosed", err)
	}
}

func TestNamespaceIsolation(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	a := NewNamespace(store, []byte("a:"))
	b := NewNamespace(store, []byte("b:"))

	if err := a.Put([]byte("key"), []byte("va")); err != nil {
		t.Fatal(err)
	}

	if has, _ := b.Has([]byte("key")); has {
		t.Error("namespaces should not share keys")
	}

	got, err := a.Get([]byte("key"))
	if err != nil || string(got) != "va" {
		t.Errorf("namespaced get: got %q, %v", got, err)
	}
}

func TestAgreementStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	agreements := NewAgreementStore(store)
	secretHash := core.Hash([]byte("secret"))

	agreement := core.Agreement{
		Party1:      testAddress("alice"),
		Party2:      testAddress("bob"),
		Party1Voted: true,
	}

	if err := agreements.Put(secretHash, agreement); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := agreements.Get(secretHash)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != agreement {
		t.Errorf("got %+v, want %+v", got, agreement)
	}

	if err := agreements.Delete(secretHash); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if has, _ := agreements.Has(secretHash); has {
		t.Error("agreement should be gone after delete")
	}
}

func TestUsedSignatureStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	used := NewUsedSignatureStore(store)
	digest := core.Hash([]byte("signature bytes"))

	if has, _ := used.Has(digest); has {
		t.Error("fresh digest should not be marked used")
	}

	if err := used.Add(digest); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if has, _ := used.Has(digest); !has {
		t.Error("digest should be marked used after add")
	}
}

func TestCodecVoteFlags(t *testing.T) {
	codec := NewBinaryCodec()

	for _, a := range []core.Agreement{
		{Party1: testAddress("a"), Party2: testAddress("b")},
		{Party1: testAddress("a"), Party2: testAddress("b"), Party1Voted: true},
		{Party1: testAddress("a"), Party2: testAddress("b"), Party2Voted: true},
		{Party1: testAddress("a"), Party2: testAddress("b"), Party1Voted: true, Party2Voted: true},
	} {
		data, err := codec.EncodeAgreement(a)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		got, err := codec.DecodeAgreement(data)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if got != a {
			t.Errorf("round-trip mismatch: got %+v, want %+v", got, a)
		}
	}

	if _, err := codec.DecodeAgreement([]byte("short")); err == nil {
		t.Error("decoding a truncated record should fail")
	}
}
