package payload

import (
	"testing"

	"github.com/sphinxmix/sphinx-packet/constants"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
	"github.com/stretchr/testify/require"
)

func testKeyBundle(seed byte) primitives.KeyBundle {
	var secret primitives.GroupElement
	secret[0] = seed
	return primitives.DeriveKeys(secret)
}

func TestNewRejectsOverlongMessage(t *testing.T) {
	require := require.New(t)

	var dest route.DestinationAddress
	_, err := New(dest, make([]byte, constants.MaxMessageLength+1))
	require.ErrorIs(err, ErrMessageTooLong)
}

func TestEncapsulatePeelRoundTrip(t *testing.T) {
	require := require.New(t)

	var dest route.DestinationAddress
	dest[0] = 0xaa
	message := []byte("hello dave")

	p, err := New(dest, message)
	require.NoError(err)

	keys := []primitives.KeyBundle{testKeyBundle(1), testKeyBundle(2), testKeyBundle(3)}

	for i := len(keys) - 1; i >= 0; i-- {
		p, err = Encapsulate(keys[i], p)
		require.NoError(err)
	}

	for i := 0; i < len(keys); i++ {
		p, err = Peel(keys[i], p)
		require.NoError(err)
	}

	gotDest, gotMessage, err := FinalHop(p)
	require.NoError(err)
	require.Equal(dest, gotDest)
	require.Equal(message, gotMessage)
}

func TestFinalHopRejectsWrongKey(t *testing.T) {
	require := require.New(t)

	var dest route.DestinationAddress
	p, err := New(dest, []byte("msg"))
	require.NoError(err)

	p, err = Encapsulate(testKeyBundle(1), p)
	require.NoError(err)

	p, err = Peel(testKeyBundle(2), p)
	require.NoError(err)

	_, _, err = FinalHop(p)
	require.ErrorIs(err, ErrInvalidPayloadTag)
}
