package primitives

import "crypto/hmac"
import "crypto/sha256"

// Domain-separation labels for the five-key schedule. Each is used as
// the HMAC key with the shared secret as the message, generalising the
// teacher's own generateKey(keyType, secret) helper (which derives rho,
// mu, um and pad from four fixed byte labels) from four labels to five.
var (
	labelBlind   = []byte("sphinx-packet:blind")
	labelRouting = []byte("sphinx-packet:rinf")
	labelMAC     = []byte("sphinx-packet:mac")
	labelPayload = []byte("sphinx-packet:pi")
	labelFiller  = []byte("sphinx-packet:rho")
)

// KeyBundle is the set of five keys a single hop's shared secret expands
// into: the blinding scalar B, the routing-info stream key A, the MAC
// key Mu, the payload wide-block key Pi, and the filler stream key Rho.
//
// The routing-info encoder and the filler generator both key their
// stream cipher off Rho (see header.encodeRoutingInfo / generateFiller):
// the filler must reproduce exactly the bytes peeling would leave
// behind, so it has to use the same stream the encoder used. A is
// derived for schedule completeness but, per this construction, is not
// consumed by any operation - see DESIGN.md.
type KeyBundle struct {
	B   Scalar
	A   [32]byte
	Mu  [32]byte
	Pi  [32]byte
	Rho [32]byte
}

// Zero overwrites every key in the bundle, the manual equivalent of a
// zeroizing-memory container: no ecosystem zeroize library appears in
// the retrieved corpus with a usage pattern to ground one on.
func (k *KeyBundle) Zero() {
	for i := range k.B {
		k.B[i] = 0
	}
	for i := range k.A {
		k.A[i] = 0
	}
	for i := range k.Mu {
		k.Mu[i] = 0
	}
	for i := range k.Pi {
		k.Pi[i] = 0
	}
	for i := range k.Rho {
		k.Rho[i] = 0
	}
}

func deriveKey(label []byte, secret []byte) [32]byte {
	h := hmac.New(sha256.New, label)
	h.Write(secret)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeriveKeys expands a group_elem_len-byte shared secret into the
// per-hop KeyBundle, domain-separating each of the five keys by label.
func DeriveKeys(sharedSecret GroupElement) KeyBundle {
	return KeyBundle{
		B:   deriveKey(labelBlind, sharedSecret[:]),
		A:   deriveKey(labelRouting, sharedSecret[:]),
		Mu:  deriveKey(labelMAC, sharedSecret[:]),
		Pi:  deriveKey(labelPayload, sharedSecret[:]),
		Rho: deriveKey(labelFiller, sharedSecret[:]),
	}
}
