package primitives

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/sphinxmix/sphinx-packet/constants"
)

// MAC computes a fixed-length integrity tag over data, keyed by key.
// HMAC-SHA256 truncated to constants.SecurityParameter bytes - stdlib,
// matching the teacher's own hmac.New(sha256.New, muKey) construction;
// no third-party MAC library appears anywhere in the retrieved corpus.
func MAC(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)[:constants.SecurityParameter]
}

// VerifyMAC reports whether tag is the valid MAC of data under key,
// comparing in constant time via hmac.Equal (the same helper the
// teacher calls in ProcessOnion).
func VerifyMAC(key, data, tag []byte) bool {
	return hmac.Equal(MAC(key, data), tag)
}
