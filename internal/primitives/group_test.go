package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarMultIsCommutativeAcrossOrder(t *testing.T) {
	require := require.New(t)

	a, err := RandomScalar()
	require.NoError(err)
	b, err := RandomScalar()
	require.NoError(err)

	// (a*b)*G == (b*a)*G
	aG, err := ScalarBaseMult(a)
	require.NoError(err)
	abG, err := ScalarMult(b, aG)
	require.NoError(err)

	bG, err := ScalarBaseMult(b)
	require.NoError(err)
	baG, err := ScalarMult(a, bG)
	require.NoError(err)

	require.Equal(abG, baG)
}

func TestKeygenProducesMatchingPair(t *testing.T) {
	require := require.New(t)

	sk, pk, err := Keygen()
	require.NoError(err)

	derived, err := ScalarBaseMult(sk)
	require.NoError(err)
	require.Equal(pk, derived)
}

func TestRandomScalarIsNotDeterministic(t *testing.T) {
	require := require.New(t)

	a, err := RandomScalar()
	require.NoError(err)
	b, err := RandomScalar()
	require.NoError(err)

	require.NotEqual(a, b)
}
