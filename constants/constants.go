// Package constants pins the fixed byte lengths that the Sphinx packet
// format is built around. Every other package imports these rather than
// hard-coding sizes, the way the teacher pins 1366/1300/32 inline but
// named here since this core is not tied to a single route length.
package constants

const (
	// MaxHops is the maximum route length in hops (L in spec terms).
	MaxHops = 5

	// SecurityParameter is the security parameter in bytes (k).
	SecurityParameter = 16

	// NodeAddressLength is the length of a mix node address (nu).
	NodeAddressLength = 32

	// DestinationAddressLength is the length of a destination address (delta).
	DestinationAddressLength = 32

	// SURBIdentifierLength is the length of a SURB identifier.
	SURBIdentifierLength = 16

	// DelayLength is the wire length of the per-hop delay field.
	DelayLength = 8

	// GroupElementLength is the encoded length of a Curve25519 group element.
	GroupElementLength = 32

	// ScalarLength is the encoded length of a Curve25519 scalar.
	ScalarLength = 32

	// PayloadLength is the total size, in bytes, of the onion payload.
	PayloadLength = 1024
)

// PerHopLength is the size of a single routing-info record: the next
// hop's address, its delay, and the MAC covering the next layer.
const PerHopLength = NodeAddressLength + DelayLength + SecurityParameter

// RoutingInfoLength is the total size of the encrypted routing block.
const RoutingInfoLength = MaxHops * PerHopLength

// HeaderLength is the total size of a Sphinx header: the ephemeral
// point, the routing info, and the MAC over it.
const HeaderLength = GroupElementLength + RoutingInfoLength + SecurityParameter

// PacketLength is the total wire size of a Sphinx packet.
const PacketLength = HeaderLength + PayloadLength

// MaxMessageLength is the largest message that fits in a payload once
// the zero tag, destination address and 0x01 boundary are accounted for.
const MaxMessageLength = PayloadLength - SecurityParameter - DestinationAddressLength - 1
