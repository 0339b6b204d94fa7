package sphinx

import (
	"errors"

	"github.com/sphinxmix/sphinx-packet/header"
	"github.com/sphinxmix/sphinx-packet/payload"
	"github.com/sphinxmix/sphinx-packet/route"
)

// Sentinel errors for the public API (spec.md §7), re-exporting the
// lower-level packages' own sentinels so callers only need to import
// the root package and use errors.Is.
var (
	ErrRouteTooLong         = route.ErrRouteTooLong
	ErrRouteEmpty           = route.ErrRouteEmpty
	ErrDuplicateNode        = route.ErrDuplicateNode
	ErrReservedNodeAddress  = header.ErrReservedNodeAddress
	ErrRouteTooLongForPayload = header.ErrRouteTooLongForPayload
	ErrMessageTooLong       = payload.ErrMessageTooLong
	ErrDelayMismatch        = header.ErrDelayMismatch
	ErrInvalidPacketLength  = errors.New("sphinx: packet has invalid length")
	ErrMacMismatch          = header.ErrMacMismatch
	ErrInvalidPayloadTag    = payload.ErrInvalidPayloadTag
	ErrMalformedRoutingInfo = header.ErrMalformedRoutingInfo
)
