// Package route holds the plain-value route, node and destination types
// that the rest of the Sphinx packet library is built around. None of
// these types carry behaviour beyond construction-time validation,
// matching the teacher's own preference for plain structs over
// hierarchies (onion.HopPayload is a bare struct; so is everything here).
package route

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sphinxmix/sphinx-packet/constants"
)

// ErrRouteEmpty is returned when a route has no nodes.
var ErrRouteEmpty = errors.New("route: route must contain at least one node")

// ErrRouteTooLong is returned when a route exceeds constants.MaxHops.
var ErrRouteTooLong = fmt.Errorf("route: route longer than %d hops", constants.MaxHops)

// ErrDuplicateNode is returned when two nodes in a route share a public key.
var ErrDuplicateNode = errors.New("route: route contains duplicate node public keys")

// NodeAddress is a fixed-length mix node address.
type NodeAddress [constants.NodeAddressLength]byte

// DestinationAddress is a fixed-length destination address.
type DestinationAddress [constants.DestinationAddressLength]byte

// SURBIdentifier identifies a single-use reply block.
type SURBIdentifier [constants.SURBIdentifierLength]byte

// Node is a mix relay: an address and its long-term Curve25519 public key.
type Node struct {
	Address NodeAddress
	PubKey  [constants.GroupElementLength]byte
}

// NewNode builds a Node, copying the given address and public key.
func NewNode(address NodeAddress, pubKey [constants.GroupElementLength]byte) Node {
	return Node{Address: address, PubKey: pubKey}
}

// Destination is the final recipient of a Sphinx packet: an address and
// the SURB identifier the sender attached, if any.
type Destination struct {
	Address    DestinationAddress
	Identifier SURBIdentifier
}

// NewDestination builds a Destination from an address and SURB identifier.
func NewDestination(address DestinationAddress, identifier SURBIdentifier) Destination {
	return Destination{Address: address, Identifier: identifier}
}

// Route is an ordered sequence of distinct mix nodes a packet traverses.
type Route []Node

// Validate enforces the route invariants: non-empty, no longer than
// constants.MaxHops, and no two nodes sharing a public key.
func (r Route) Validate() error {
	if len(r) == 0 {
		return ErrRouteEmpty
	}
	if len(r) > constants.MaxHops {
		return ErrRouteTooLong
	}
	for i := 0; i < len(r); i++ {
		for j := i + 1; j < len(r); j++ {
			if bytes.Equal(r[i].PubKey[:], r[j].PubKey[:]) {
				return ErrDuplicateNode
			}
		}
	}
	return nil
}
