// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_WithNotePayload(t *testing.T) {
	h := NewHasher(testHashKey)

	body, err := json.Marshal(models.NoteUpdate{ID: "n1", Title: "Groceries", Content: "- milk"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	sig := h.SumHex(body)
	if !h.Verify(body, sig) {
		t.Fatal("signature of the same body must verify")
	}

	tampered := bytes.Replace(body, []byte("milk"), []byte("beer"), 1)
	if h.Verify(tampered, sig) {
		t.Fatal("signature must not verify a modified body")
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	a := NewHasher("key-a").SumHex(data)
	b := NewHasher("key-b").SumHex(data)

	if a == b {
		t.Fatal("different keys must produce different signatures")
	}
}

func TestHasher_VerifyRejectsGarbage(t *testing.T) {
	h := NewHasher(testHashKey)

	if h.Verify([]byte("x"), "not-hex") {
		t.Fatal("non-hex signature must not verify")
	}
	if h.Verify([]byte("x"), "") {
		t.Fatal("empty signature must not verify")
	}
}

func TestNewHasher_EmptyKeyDisables(t *testing.T) {
	h := NewHasher("")

	if h.Enabled() {
		t.Fatal("expected disabled hasher for empty key")
	}
	if !NewHasher("k").Enabled() {
		t.Fatal("expected enabled hasher for non-empty key")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.SumHex([]byte("same"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := h.SumHex([]byte("same")); got != want {
					t.Errorf("concurrent hash mismatch: %s != %s", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("hello"))
	expected := hex.EncodeToString(mac.Sum(nil))

	if got := HashString("hello", testHashKey); got != expected {
		t.Fatalf("want %s, got %s", expected, got)
	}
	if got := NewHasher(testHashKey).SumHex([]byte("hello")); got != expected {
		t.Fatalf("Hasher and HashString must agree: want %s, got %s", expected, got)
	}
}
