package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests of request and response bodies.
// It keeps a pool of hash instances so the hot path does not allocate a new
// HMAC per call. A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey, or nil when hashKey is
// empty. A nil *Hasher is valid and reports Enabled() == false, so callers
// can skip signing without extra checks.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sig := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether the hasher has a key.
func (h *Hasher) Enabled() bool {
	return h != nil
}

// Sum computes an HMAC-SHA256 digest over data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// SumHex returns Sum(data) hex-encoded, the form sent in [HashHeader].
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// is constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(got, h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike Hasher, this function creates a new HMAC instance on each call.
// Suitable for one-off hashing.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
