// Package primitives binds the fixed-size cryptographic adapters the
// Sphinx core is built on: a Curve25519 group, a chacha20 stream PRG,
// an HMAC-SHA256 MAC, a five-key derivation schedule, and a lioness
// wide-block PRP for the payload. Every adapter here pins only
// input/output sizes and keying discipline, per spec.md's primitive
// binding contract - the concrete group/cipher/MAC choice is the one
// place this core commits to real algorithms.
package primitives

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/sphinxmix/sphinx-packet/constants"
)

// GroupElement is an encoded Curve25519 Montgomery u-coordinate.
type GroupElement [constants.GroupElementLength]byte

// Scalar is an encoded Curve25519 scalar.
type Scalar [constants.ScalarLength]byte

// Basepoint is the Curve25519 generator, encoded.
var Basepoint = func() (g GroupElement) {
	copy(g[:], curve25519.Basepoint)
	return g
}()

// RandomScalar draws a fresh non-zero scalar from a CSPRNG. X25519
// clamps the scalar internally, so any 32 random bytes are valid input;
// drawing from crypto/rand mirrors the teacher's reliance on
// secp256k1.GeneratePrivateKey, which itself reads crypto/rand.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := rand.Read(s[:]); err != nil {
		return Scalar{}, fmt.Errorf("primitives: failed to sample random scalar: %w", err)
	}
	return s, nil
}

// ScalarMult computes scalar*point on the Curve25519 Montgomery curve.
func ScalarMult(scalar Scalar, point GroupElement) (GroupElement, error) {
	out, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		return GroupElement{}, fmt.Errorf("primitives: scalar multiplication failed: %w", err)
	}
	var g GroupElement
	copy(g[:], out)
	return g, nil
}

// ScalarBaseMult computes scalar*G.
func ScalarBaseMult(scalar Scalar) (GroupElement, error) {
	return ScalarMult(scalar, Basepoint)
}

// PrivateKey is a node's long-term Curve25519 private scalar.
type PrivateKey = Scalar

// PublicKey is a node's long-term Curve25519 public group element.
type PublicKey = GroupElement

// Keygen produces a fresh Curve25519 key pair, the keygen() surface
// external callers (and this library's own tests) use to mint node keys.
func Keygen() (PrivateKey, PublicKey, error) {
	sk, err := RandomScalar()
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	pk, err := ScalarBaseMult(sk)
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	return sk, pk, nil
}
