package primitives

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRGIsDeterministic(t *testing.T) {
	require := require.New(t)

	key := make([]byte, 32)
	key[0] = 0x42

	a, err := PRG(key, 128)
	require.NoError(err)
	b, err := PRG(key, 128)
	require.NoError(err)

	require.True(bytes.Equal(a, b))
}

func TestPRGDiffersByKey(t *testing.T) {
	require := require.New(t)

	key1 := make([]byte, 32)
	key1[0] = 0x01
	key2 := make([]byte, 32)
	key2[0] = 0x02

	a, err := PRG(key1, 64)
	require.NoError(err)
	b, err := PRG(key2, 64)
	require.NoError(err)

	require.False(bytes.Equal(a, b))
}

func TestPRGOutputLength(t *testing.T) {
	require := require.New(t)

	key := make([]byte, 32)
	out, err := PRG(key, 513)
	require.NoError(err)
	require.Len(out, 513)
}
