package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// lionessLeftSize is the size of the short ("left") half of the
// wide-block Feistel network - one SHA-256 output.
const lionessLeftSize = sha256.Size

var lionessRoundLabels = [4][]byte{
	[]byte("sphinx-packet:lioness-1"),
	[]byte("sphinx-packet:lioness-2"),
	[]byte("sphinx-packet:lioness-3"),
	[]byte("sphinx-packet:lioness-4"),
}

// lionessRoundKeys derives the four round keys from the payload key Pi,
// the "sub-bundle of K.pi" spec.md §9 says implementations may inline.
func lionessRoundKeys(pi [32]byte) [4][]byte {
	var keys [4][]byte
	for i, label := range lionessRoundLabels {
		h := hmac.New(sha256.New, pi[:])
		h.Write(label)
		keys[i] = h.Sum(nil)
	}
	return keys
}

// lionessHash is the keyed-hash round function H(key, data), truncated/
// expanded to lionessLeftSize bytes (an exact fit for HMAC-SHA256).
func lionessHash(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// lionessStream is the keyed-stream round function S(key, seed, outLen):
// a fresh chacha20 key is derived from (key, seed) via HMAC-SHA256, and
// the resulting keystream of outLen bytes is produced via PRG.
func lionessStream(key, seed []byte, outLen int) ([]byte, error) {
	streamKey := lionessHash(key, seed)
	return PRG(streamKey, outLen)
}

// LionessEncrypt applies the four-round unbalanced Feistel network
// spec.md §9 describes to block, returning a new length-preserving,
// length-unchanged ciphertext. Any single-bit flip in the ciphertext
// randomises the decrypted block in its entirety.
func LionessEncrypt(pi [32]byte, block []byte) ([]byte, error) {
	if len(block) <= lionessLeftSize {
		return nil, fmt.Errorf("primitives: lioness block too short (%d bytes)", len(block))
	}
	keys := lionessRoundKeys(pi)

	l := append([]byte(nil), block[:lionessLeftSize]...)
	r := append([]byte(nil), block[lionessLeftSize:]...)

	// L1 = L xor H(K1, R)
	l = xorInto(l, lionessHash(keys[0], r))

	// R1 = R xor S(K2, L1)
	s, err := lionessStream(keys[1], l, len(r))
	if err != nil {
		return nil, err
	}
	r = xorInto(r, s)

	// L2 = L1 xor H(K3, R1)
	l = xorInto(l, lionessHash(keys[2], r))

	// R2 = R1 xor S(K4, L2)
	s, err = lionessStream(keys[3], l, len(r))
	if err != nil {
		return nil, err
	}
	r = xorInto(r, s)

	out := make([]byte, 0, len(block))
	out = append(out, l...)
	out = append(out, r...)
	return out, nil
}

// LionessDecrypt inverts LionessEncrypt under the same key.
func LionessDecrypt(pi [32]byte, block []byte) ([]byte, error) {
	if len(block) <= lionessLeftSize {
		return nil, fmt.Errorf("primitives: lioness block too short (%d bytes)", len(block))
	}
	keys := lionessRoundKeys(pi)

	l := append([]byte(nil), block[:lionessLeftSize]...)
	r := append([]byte(nil), block[lionessLeftSize:]...)

	// R1 = R2 xor S(K4, L2)
	s, err := lionessStream(keys[3], l, len(r))
	if err != nil {
		return nil, err
	}
	r = xorInto(r, s)

	// L1 = L2 xor H(K3, R1)
	l = xorInto(l, lionessHash(keys[2], r))

	// R = R1 xor S(K2, L1)
	s, err = lionessStream(keys[1], l, len(r))
	if err != nil {
		return nil, err
	}
	r = xorInto(r, s)

	// L = L1 xor H(K1, R)
	l = xorInto(l, lionessHash(keys[0], r))

	out := make([]byte, 0, len(block))
	out = append(out, l...)
	out = append(out, r...)
	return out, nil
}

// xorInto XORs src into a copy of dst and returns it, leaving dst
// untouched (the lioness rounds above chain through several of these).
func xorInto(dst, src []byte) []byte {
	out := make([]byte, len(dst))
	xorBytes(out, dst, src)
	return out
}
