// Package payload implements the Sphinx onion payload: a fixed-size,
// wide-block-encrypted body that is peeled one layer per hop alongside
// the header, and authenticated at the final hop by a leading all-zero
// tag. There is no teacher equivalent - onion.go's payload handling is
// a plain length-preserving chacha20 XOR, not a wide-block PRP - so
// this package is grounded directly on spec.md §4.6/§9.
package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sphinxmix/sphinx-packet/constants"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
)

// ErrMessageTooLong is returned when a message cannot fit in a single payload.
var ErrMessageTooLong = fmt.Errorf("payload: message longer than %d bytes", constants.MaxMessageLength)

// ErrInvalidPayloadTag is returned when, after a final-hop decryption,
// the leading security-parameter bytes are not all zero.
var ErrInvalidPayloadTag = errors.New("payload: invalid payload tag")

// Payload is the fixed-size onion payload carried alongside a header.
type Payload [constants.PayloadLength]byte

// New builds the innermost payload block:
//
//	zeros[k] ‖ destination_address[delta] ‖ message ‖ 0x01 ‖ zeros...
//
// The message length is bounded by payload_len - k - delta - 1.
func New(destination route.DestinationAddress, message []byte) (Payload, error) {
	if len(message) > constants.MaxMessageLength {
		return Payload{}, ErrMessageTooLong
	}

	var p Payload
	offset := constants.SecurityParameter
	offset += copy(p[offset:], destination[:])
	offset += copy(p[offset:], message)
	p[offset] = 0x01
	// the remainder of p is already zero-valued.
	return p, nil
}

// Encapsulate applies one layer of the wide-block PRP to p, keyed by
// key.Pi. Called n-1..0 by the sender to build the fully-wrapped payload.
func Encapsulate(key primitives.KeyBundle, p Payload) (Payload, error) {
	enc, err := primitives.LionessEncrypt(key.Pi, p[:])
	if err != nil {
		return Payload{}, err
	}
	var out Payload
	copy(out[:], enc)
	return out, nil
}

// Peel removes one layer of the wide-block PRP from p, keyed by key.Pi.
// Every hop, including the final one, calls this exactly once.
func Peel(key primitives.KeyBundle, p Payload) (Payload, error) {
	dec, err := primitives.LionessDecrypt(key.Pi, p[:])
	if err != nil {
		return Payload{}, err
	}
	var out Payload
	copy(out[:], dec)
	return out, nil
}

// FinalHop strips the leading zero tag from a fully-peeled payload and
// returns the destination address and message it wraps. It fails with
// ErrInvalidPayloadTag if the payload was tampered with or decrypted
// under the wrong key bundle.
func FinalHop(p Payload) (route.DestinationAddress, []byte, error) {
	zeroTag := make([]byte, constants.SecurityParameter)
	if !bytes.Equal(p[:constants.SecurityParameter], zeroTag) {
		return route.DestinationAddress{}, nil, ErrInvalidPayloadTag
	}

	offset := constants.SecurityParameter
	var dest route.DestinationAddress
	copy(dest[:], p[offset:offset+constants.DestinationAddressLength])
	offset += constants.DestinationAddressLength

	// The message may contain any byte value, including 0x01, so the
	// terminator can't be found by scanning forward for the first 0x01.
	// Padding past the terminator is guaranteed all-zero, so trim trailing
	// zeros from the end and the terminator is whatever is left.
	trimmed := bytes.TrimRight(p[offset:], "\x00")
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != 0x01 {
		return route.DestinationAddress{}, nil, ErrInvalidPayloadTag
	}

	message := make([]byte, len(trimmed)-1)
	copy(message, trimmed[:len(trimmed)-1])
	return dest, message, nil
}
