package atom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash_SpotChecks(t *testing.T) {
	require.Equal(t, uint32(0), Hash([]byte("")))
	require.Equal(t, uint32(0x6D5F), Hash([]byte("foo")))
}

func TestOrd0_ShortAtomZeroPadded(t *testing.T) {
	a := ord0([]byte("a"))
	b := ord0([]byte("a\x00\x00\x00"))
	require.Equal(t, b, a)
}

func TestOrd0_Orders(t *testing.T) {
	require.Less(t, ord0([]byte("aaaa")), ord0([]byte("bbbb")))
}
