package header

import (
	"testing"

	"github.com/sphinxmix/sphinx-packet/header/delays"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
	"github.com/stretchr/testify/require"
)

type testHop struct {
	node route.Node
	sk   primitives.Scalar
}

func buildTestRoute(t *testing.T, n int) []testHop {
	t.Helper()
	hops := make([]testHop, n)
	for i := range hops {
		sk, pk, err := primitives.Keygen()
		require.NoError(t, err)
		var addr route.NodeAddress
		addr[0] = byte(i + 1)
		hops[i] = testHop{node: route.NewNode(addr, pk), sk: sk}
	}
	return hops
}

func TestHeaderBuildAndUnwrapThreeHops(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 3)
	r := make(route.Route, len(hops))
	for i, h := range hops {
		r[i] = h.node
	}

	ds := []delays.Delay{1000, 2000, 3000}
	var dest route.DestinationAddress
	dest[0] = 0x55
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	h, _, err := New(r, ds, destination)
	require.NoError(err)

	cur := h
	for i := 0; i < len(hops); i++ {
		next, peeled, key, err := cur.Unwrap(hops[i].sk)
		require.NoError(err)
		key.Zero()

		if i < len(hops)-1 {
			require.False(peeled.Final)
			require.Equal(hops[i+1].node.Address, peeled.NextAddress)
			require.Equal(ds[i+1], peeled.Delay)
			cur = next
		} else {
			require.True(peeled.Final)
			require.Equal(dest, peeled.Destination)
		}
	}
}

func TestHeaderUnwrapRejectsTamperedGamma(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 2)
	r := route.Route{hops[0].node, hops[1].node}
	ds := []delays.Delay{1, 2}
	var dest route.DestinationAddress
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	h, _, err := New(r, ds, destination)
	require.NoError(err)

	h.Gamma[0] ^= 0xff

	_, _, _, err = h.Unwrap(hops[0].sk)
	require.ErrorIs(err, ErrMacMismatch)
}

func TestHeaderUnwrapRejectsWrongKey(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 2)
	r := route.Route{hops[0].node, hops[1].node}
	ds := []delays.Delay{1, 2}
	var dest route.DestinationAddress
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	h, _, err := New(r, ds, destination)
	require.NoError(err)

	wrongSK, _, err := primitives.Keygen()
	require.NoError(err)

	_, _, _, err = h.Unwrap(wrongSK)
	require.ErrorIs(err, ErrMacMismatch)
}

func TestNewRejectsDelayMismatch(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 2)
	r := route.Route{hops[0].node, hops[1].node}
	var dest route.DestinationAddress
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	_, _, err := New(r, []delays.Delay{1}, destination)
	require.ErrorIs(err, ErrDelayMismatch)
}

func TestNewRejectsReservedNodeAddress(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 1)
	hops[0].node.Address = FinalHopSentinel
	r := route.Route{hops[0].node}
	var dest route.DestinationAddress
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	_, _, err := New(r, []delays.Delay{1}, destination)
	require.ErrorIs(err, ErrReservedNodeAddress)
}

func TestNewRejectsRouteTooLongForFinalRecord(t *testing.T) {
	require := require.New(t)

	hops := buildTestRoute(t, 5)
	r := make(route.Route, len(hops))
	ds := make([]delays.Delay, len(hops))
	for i, h := range hops {
		r[i] = h.node
		ds[i] = delays.Delay(i)
	}
	var dest route.DestinationAddress
	destination := route.NewDestination(dest, route.SURBIdentifier{})

	_, _, err := New(r, ds, destination)
	require.ErrorIs(err, ErrRouteTooLongForPayload)
}
