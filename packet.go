// Package sphinx implements a Sphinx mix-network packet: a layered
// header construction plus a wide-block-encrypted onion payload that
// together let a sender route a message through an ordered sequence of
// mix relays such that each relay learns only its immediate successor,
// replays are detectable, and the wire size never changes.
//
// Package layout follows the teacher's (onion.go's) own style of a
// single flat public surface over a small set of supporting packages:
// route (node/destination/route types), header (C2-C6), payload (C7)
// and header/delays (C8), with internal/primitives binding the
// concrete cryptography (C1).
package sphinx

import (
	"fmt"

	"github.com/sphinxmix/sphinx-packet/constants"
	"github.com/sphinxmix/sphinx-packet/header"
	"github.com/sphinxmix/sphinx-packet/header/delays"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/payload"
	"github.com/sphinxmix/sphinx-packet/route"
)

// PrivateKey and PublicKey are a node's long-term Curve25519 key pair.
type PrivateKey = primitives.PrivateKey
type PublicKey = primitives.PublicKey

// Keygen produces a fresh Curve25519 key pair for a mix node.
func Keygen() (PrivateKey, PublicKey, error) {
	return primitives.Keygen()
}

// Packet is a complete Sphinx packet: a header and its onion payload.
// Its wire size (via Bytes) is always constants.PacketLength.
type Packet struct {
	Header  header.Header
	Payload payload.Payload
}

// New builds a Sphinx packet carrying message through route, to be
// delivered to destination, delayed at each hop as specified by delays.
//
// Preconditions: 1 <= len(route) <= constants.MaxHops; len(delays) ==
// len(route); len(message) <= constants.MaxMessageLength.
//
// A route of exactly constants.MaxHops hops passes route validation but
// leaves too little routing space for the final-hop record, so New
// rejects it with ErrRouteTooLongForPayload; the longest route New
// accepts is constants.MaxHops-1 hops.
func New(message []byte, r route.Route, destination route.Destination, ds []delays.Delay) (Packet, error) {
	h, keys, err := header.New(r, ds, destination)
	if err != nil {
		return Packet{}, err
	}
	defer func() {
		for i := range keys {
			keys[i].Zero()
		}
	}()

	p, err := payload.New(destination.Address, message)
	if err != nil {
		return Packet{}, err
	}

	for i := len(keys) - 1; i >= 0; i-- {
		p, err = payload.Encapsulate(keys[i], p)
		if err != nil {
			return Packet{}, err
		}
	}

	return Packet{Header: h, Payload: p}, nil
}

// Bytes serialises the packet to its fixed-size wire form:
//
//	alpha ‖ beta ‖ gamma ‖ payload
func (p Packet) Bytes() [constants.PacketLength]byte {
	var out [constants.PacketLength]byte
	offset := 0
	offset += copy(out[offset:], p.Header.Alpha[:])
	offset += copy(out[offset:], p.Header.Beta[:])
	offset += copy(out[offset:], p.Header.Gamma[:])
	copy(out[offset:], p.Payload[:])
	return out
}

// FromBytes parses a packet from its wire form. It fails with
// ErrInvalidPacketLength if b is not exactly constants.PacketLength
// bytes; alpha is not validated for canonical form here - that check
// is implicitly a no-op under X25519, which treats any 32 bytes as a
// valid Montgomery u-coordinate, and happens lazily inside Process.
func FromBytes(b []byte) (Packet, error) {
	if len(b) != constants.PacketLength {
		return Packet{}, ErrInvalidPacketLength
	}

	var h header.Header
	offset := 0
	offset += copy(h.Alpha[:], b[offset:offset+constants.GroupElementLength])
	offset += copy(h.Beta[:], b[offset:offset+constants.RoutingInfoLength])
	offset += copy(h.Gamma[:], b[offset:offset+constants.SecurityParameter])

	var p payload.Payload
	copy(p[:], b[offset:offset+constants.PayloadLength])

	return Packet{Header: h, Payload: p}, nil
}

// Kind discriminates the two arms of ProcessResult.
type Kind int

const (
	// Forward means the packet has another hop to traverse.
	Forward Kind = iota
	// Final means this hop is the packet's destination.
	Final
)

// ProcessResult is the outcome of processing a packet at one relay: a
// tagged variant, following the teacher's own two-return-path style in
// ProcessOnion (there expressed as a sentinel error used for control
// flow) formalised here into an explicit Kind instead, per spec.md's
// "no exceptions for flow" error design.
type ProcessResult struct {
	Kind Kind

	// Populated when Kind == Forward.
	NextPacket  Packet
	NextAddress route.NodeAddress
	Delay       delays.Delay

	// Populated when Kind == Final.
	Destination route.DestinationAddress
	SURBID      route.SURBIdentifier
	Message     []byte
}

// Process unwraps one layer of both the header and the payload, using
// privateKey to derive this hop's shared secret. It fails with
// ErrMacMismatch if the header was tampered with or processed under the
// wrong key, ErrMalformedRoutingInfo if the decrypted routing layer is
// malformed, or ErrInvalidPayloadTag if the final-hop payload's leading
// tag does not verify.
func (p Packet) Process(privateKey PrivateKey) (ProcessResult, error) {
	nextHeader, peeled, key, err := p.Header.Unwrap(privateKey)
	if err != nil {
		return ProcessResult{}, err
	}
	defer key.Zero()

	peeledPayload, err := payload.Peel(key, p.Payload)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("sphinx: payload decryption failed: %w", err)
	}

	if peeled.Final {
		dest, message, err := payload.FinalHop(peeledPayload)
		if err != nil {
			return ProcessResult{}, err
		}
		return ProcessResult{
			Kind:        Final,
			Destination: dest,
			SURBID:      peeled.SURBID,
			Message:     message,
		}, nil
	}

	return ProcessResult{
		Kind:        Forward,
		NextPacket:  Packet{Header: nextHeader, Payload: peeledPayload},
		NextAddress: peeled.NextAddress,
		Delay:       peeled.Delay,
	}, nil
}
