package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMACVerifiesItsOwnOutput(t *testing.T) {
	require := require.New(t)

	key := []byte("mac-key")
	data := []byte("routing info payload")

	tag := MAC(key, data)
	require.Len(tag, 16)
	require.True(VerifyMAC(key, data, tag))
}

func TestMACRejectsTamperedData(t *testing.T) {
	require := require.New(t)

	key := []byte("mac-key")
	data := []byte("routing info payload")
	tag := MAC(key, data)

	tampered := append([]byte(nil), data...)
	tampered[0] ^= 0xff

	require.False(VerifyMAC(key, tampered, tag))
}

func TestMACRejectsWrongKey(t *testing.T) {
	require := require.New(t)

	data := []byte("routing info payload")
	tag := MAC([]byte("key-a"), data)

	require.False(VerifyMAC([]byte("key-b"), data, tag))
}
