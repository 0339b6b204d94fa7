package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKeysDomainSeparation(t *testing.T) {
	require := require.New(t)

	var secret GroupElement
	secret[0] = 0x7

	k := DeriveKeys(secret)

	require.NotEqual(k.B[:], k.A[:])
	require.NotEqual(k.A[:], k.Mu[:])
	require.NotEqual(k.Mu[:], k.Pi[:])
	require.NotEqual(k.Pi[:], k.Rho[:])
	require.NotEqual(k.Rho[:], k.B[:])
}

func TestDeriveKeysIsDeterministic(t *testing.T) {
	require := require.New(t)

	var secret GroupElement
	secret[3] = 0x9

	k1 := DeriveKeys(secret)
	k2 := DeriveKeys(secret)

	require.Equal(k1, k2)
}

func TestKeyBundleZero(t *testing.T) {
	require := require.New(t)

	var secret GroupElement
	secret[0] = 0x1
	k := DeriveKeys(secret)
	k.Zero()

	var zero [32]byte
	require.Equal(Scalar{}, k.B)
	require.Equal(zero, k.A)
	require.Equal(zero, k.Mu)
	require.Equal(zero, k.Pi)
	require.Equal(zero, k.Rho)
}
