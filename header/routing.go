package header

import (
	"encoding/binary"
	"errors"

	"github.com/sphinxmix/sphinx-packet/constants"
	"github.com/sphinxmix/sphinx-packet/header/delays"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
)

// FinalHopSentinel is the reserved node-address value that marks the
// terminal layer of beta. Node addresses supplied to New must never
// equal this value - see route.Validate's caller in New.
var FinalHopSentinel route.NodeAddress

// finalRecordLength is how much room the final-hop record needs before
// padding: the sentinel address, the destination address and the SURB
// identifier.
const finalRecordLength = constants.NodeAddressLength + constants.DestinationAddressLength + constants.SURBIdentifierLength

// ErrRouteTooLongForPayload is returned when a route is short enough to
// satisfy route.Validate but too long for the final-hop record (sentinel
// ‖ destination ‖ SURB id) to fit in the space routing_info_len leaves
// once (n-1) per-hop records have been reserved.
var ErrRouteTooLongForPayload = errors.New("header: route too long for final-hop routing record to fit")

// ErrMalformedRoutingInfo is returned when a decrypted routing layer
// cannot be interpreted as either a forward-hop or final-hop record.
var ErrMalformedRoutingInfo = errors.New("header: malformed routing information")

// encodeRoutingInfo builds beta and gamma inside-out, from the final
// hop down to hop 0, following the teacher's own inside-out
// hopPayload/rightShift/xor/hmac loop in ConstructOnion, generalised to
// this spec's fixed-width address‖delay‖gamma records and its
// sentinel-marked final record.
func encodeRoutingInfo(nodes []route.Node, ds []delays.Delay, dest route.Destination, keys []primitives.KeyBundle, filler []byte) ([constants.RoutingInfoLength]byte, [constants.SecurityParameter]byte, error) {
	n := len(nodes)
	leadingLen := constants.RoutingInfoLength - (n-1)*constants.PerHopLength
	if leadingLen < finalRecordLength {
		return [constants.RoutingInfoLength]byte{}, [constants.SecurityParameter]byte{}, ErrRouteTooLongForPayload
	}

	leading := make([]byte, leadingLen)
	offset := constants.NodeAddressLength // leave the sentinel's all-zero bytes in place
	offset += copy(leading[offset:], dest.Address[:])
	copy(leading[offset:], dest.Identifier[:])

	inner := make([]byte, 0, constants.RoutingInfoLength)
	inner = append(inner, leading...)
	inner = append(inner, filler...)

	stream, err := primitives.PRG(keys[n-1].Rho[:], constants.RoutingInfoLength)
	if err != nil {
		return [constants.RoutingInfoLength]byte{}, [constants.SecurityParameter]byte{}, err
	}
	beta := make([]byte, constants.RoutingInfoLength)
	xorInto(beta, inner)
	xorInto(beta, stream)

	gamma := primitives.MAC(keys[n-1].Mu[:], beta)

	for i := n - 2; i >= 0; i-- {
		record := make([]byte, 0, constants.PerHopLength)
		record = append(record, nodes[i+1].Address[:]...)

		var delayBytes [constants.DelayLength]byte
		binary.BigEndian.PutUint64(delayBytes[:], ds[i+1].Nanoseconds())
		record = append(record, delayBytes[:]...)
		record = append(record, gamma...)

		innerLayer := make([]byte, 0, constants.RoutingInfoLength)
		innerLayer = append(innerLayer, record...)
		innerLayer = append(innerLayer, beta[:constants.RoutingInfoLength-constants.PerHopLength]...)

		stream, err = primitives.PRG(keys[i].Rho[:], constants.RoutingInfoLength)
		if err != nil {
			return [constants.RoutingInfoLength]byte{}, [constants.SecurityParameter]byte{}, err
		}
		beta = make([]byte, constants.RoutingInfoLength)
		xorInto(beta, innerLayer)
		xorInto(beta, stream)

		gamma = primitives.MAC(keys[i].Mu[:], beta)
	}

	var betaOut [constants.RoutingInfoLength]byte
	copy(betaOut[:], beta)
	var gammaOut [constants.SecurityParameter]byte
	copy(gammaOut[:], gamma)
	return betaOut, gammaOut, nil
}

// PeeledLayer is the result of peeling one routing-info layer (C5/C10
// step 3-5): either a forward hop (next address, delay, next beta and
// gamma) or the final hop (destination address and SURB identifier).
type PeeledLayer struct {
	Final bool

	NextAddress route.NodeAddress
	Delay       delays.Delay
	NextBeta    [constants.RoutingInfoLength]byte
	NextGamma   [constants.SecurityParameter]byte

	Destination route.DestinationAddress
	SURBID      route.SURBIdentifier
}

// peelRoutingInfo reverses one layer of encodeRoutingInfo, keyed by the
// KeyBundle this hop derived from its shared secret. Adapted from the
// teacher's ProcessOnion: pad‖XOR against the rho-keyed stream, then
// parse the fixed-width record at the front of the result.
func peelRoutingInfo(beta [constants.RoutingInfoLength]byte, key primitives.KeyBundle) (PeeledLayer, error) {
	padded := make([]byte, constants.RoutingInfoLength+constants.PerHopLength)
	copy(padded, beta[:])

	stream, err := primitives.PRG(key.Rho[:], constants.RoutingInfoLength+constants.PerHopLength)
	if err != nil {
		return PeeledLayer{}, err
	}
	xorInto(padded, stream)

	var address route.NodeAddress
	copy(address[:], padded[:constants.NodeAddressLength])

	if address == FinalHopSentinel {
		rest := padded[constants.NodeAddressLength:]
		if len(rest) < constants.DestinationAddressLength+constants.SURBIdentifierLength {
			return PeeledLayer{}, ErrMalformedRoutingInfo
		}
		var dest route.DestinationAddress
		copy(dest[:], rest[:constants.DestinationAddressLength])
		var surbID route.SURBIdentifier
		copy(surbID[:], rest[constants.DestinationAddressLength:constants.DestinationAddressLength+constants.SURBIdentifierLength])

		return PeeledLayer{Final: true, Destination: dest, SURBID: surbID}, nil
	}

	offset := constants.NodeAddressLength
	delayNanos := binary.BigEndian.Uint64(padded[offset : offset+constants.DelayLength])
	offset += constants.DelayLength

	var nextGamma [constants.SecurityParameter]byte
	copy(nextGamma[:], padded[offset:offset+constants.SecurityParameter])
	offset += constants.SecurityParameter

	var nextBeta [constants.RoutingInfoLength]byte
	copy(nextBeta[:], padded[offset:offset+constants.RoutingInfoLength])

	return PeeledLayer{
		Final:       false,
		NextAddress: address,
		Delay:       delays.Delay(delayNanos),
		NextBeta:    nextBeta,
		NextGamma:   nextGamma,
	}, nil
}
