package primitives

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// zeroNonce is the fixed 96-bit nonce used for every PRG invocation.
// Every call is keyed with a derived per-hop key. Calls that share a key
// (the header's filler generator, routing-info encoder and peeler all use
// a hop's Rho) regenerate the same keystream for the same routing layer
// rather than encrypting unrelated data under it - the discipline the
// teacher's generateRandomByteStream relies on.
var zeroNonce = make([]byte, chacha20.NonceSize)

// PRG produces outLen pseudorandom bytes keyed by key, the stream cipher
// binding spec.md calls prg(key, out_len). key must be chacha20.KeySize
// (32) bytes, the length every KDF output below is pinned to.
func PRG(key []byte, outLen int) ([]byte, error) {
	cipher, err := chacha20.NewUnauthenticatedCipher(key, zeroNonce)
	if err != nil {
		return nil, fmt.Errorf("primitives: failed to build PRG stream: %w", err)
	}
	out := make([]byte, outLen)
	cipher.XORKeyStream(out, out)
	return out, nil
}

// xorBytes XORs the first min(len(a), len(b)) bytes of a and b into dst.
func xorBytes(dst, a, b []byte) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}
