// Package header implements the Sphinx header pipeline (C6): the
// blinding chain, filler, routing-info encoder and the per-hop unwrap
// step that together produce and peel the alpha‖beta‖gamma header.
package header

import (
	"errors"
	"fmt"

	"github.com/sphinxmix/sphinx-packet/constants"
	"github.com/sphinxmix/sphinx-packet/header/delays"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
)

// ErrDelayMismatch is returned when the number of delays does not match
// the number of hops in the route.
var ErrDelayMismatch = errors.New("header: number of delays does not match route length")

// ErrReservedNodeAddress is returned when a route uses the reserved
// final-hop sentinel address as a relay's address.
var ErrReservedNodeAddress = errors.New("header: route uses the reserved final-hop sentinel as a node address")

// ErrMacMismatch is returned when a header's gamma fails to verify
// against its beta during Unwrap. This is the principal tamper and
// mis-routing detector; it deliberately carries no information about
// which byte mismatched.
var ErrMacMismatch = errors.New("header: mac mismatch")

// Header is the Sphinx header: an ephemeral group element, the
// encrypted routing-info block, and the MAC covering it.
type Header struct {
	Alpha primitives.GroupElement
	Beta  [constants.RoutingInfoLength]byte
	Gamma [constants.SecurityParameter]byte
}

// New builds a Header for the given route, per-hop delays and
// destination, returning the header and the per-hop KeyBundles the
// caller uses to build the matching payload (C7).
func New(r route.Route, ds []delays.Delay, dest route.Destination) (Header, []primitives.KeyBundle, error) {
	if err := r.Validate(); err != nil {
		return Header{}, nil, err
	}
	if len(ds) != len(r) {
		return Header{}, nil, ErrDelayMismatch
	}
	for _, node := range r {
		if node.Address == FinalHopSentinel {
			return Header{}, nil, ErrReservedNodeAddress
		}
	}

	x, err := primitives.RandomScalar()
	if err != nil {
		return Header{}, nil, err
	}

	alphas, keys, err := deriveSharedSecrets(r, x)
	if err != nil {
		return Header{}, nil, err
	}

	filler, err := generateFiller(keys, constants.PerHopLength, constants.RoutingInfoLength)
	if err != nil {
		return Header{}, nil, err
	}

	beta, gamma, err := encodeRoutingInfo(r, ds, dest, keys, filler)
	if err != nil {
		return Header{}, nil, err
	}

	return Header{Alpha: alphas[0], Beta: beta, Gamma: gamma}, keys, nil
}

// Unwrap performs the relay side of one hop (C10 steps 1-5): it
// recomputes the shared secret from the given private key and this
// header's alpha, verifies gamma, and peels one routing-info layer.
//
// On a forward hop it returns the header to forward to the next hop
// along with the peeled layer (next address, delay) and this hop's
// KeyBundle (so the caller can peel the payload). On the final hop it
// returns a zero Header and a PeeledLayer with Final set.
func (h Header) Unwrap(privateKey primitives.Scalar) (Header, PeeledLayer, primitives.KeyBundle, error) {
	s, err := primitives.ScalarMult(privateKey, h.Alpha)
	if err != nil {
		return Header{}, PeeledLayer{}, primitives.KeyBundle{}, fmt.Errorf("header: shared secret derivation failed: %w", err)
	}
	key := primitives.DeriveKeys(s)

	if !primitives.VerifyMAC(key.Mu[:], h.Beta[:], h.Gamma[:]) {
		key.Zero()
		return Header{}, PeeledLayer{}, primitives.KeyBundle{}, ErrMacMismatch
	}

	peeled, err := peelRoutingInfo(h.Beta, key)
	if err != nil {
		key.Zero()
		return Header{}, PeeledLayer{}, primitives.KeyBundle{}, err
	}

	if peeled.Final {
		return Header{}, peeled, key, nil
	}

	nextAlpha, err := primitives.ScalarMult(key.B, h.Alpha)
	if err != nil {
		key.Zero()
		return Header{}, PeeledLayer{}, primitives.KeyBundle{}, fmt.Errorf("header: next alpha derivation failed: %w", err)
	}

	next := Header{Alpha: nextAlpha, Beta: peeled.NextBeta, Gamma: peeled.NextGamma}
	return next, peeled, key, nil
}
