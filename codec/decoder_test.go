package codec

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/etfgo/letf/errs"
	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func decodeBytes(t *testing.T, raw []byte) term.Term {
	t.Helper()
	out, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	return out
}

func TestDecode_SmallInteger(t *testing.T) {
	out := decodeBytes(t, []byte{VersionMagic, TagSmallInteger, 42})
	require.Equal(t, term.FixInteger(42), out)
}

func TestDecode_Nil(t *testing.T) {
	out := decodeBytes(t, []byte{VersionMagic, TagNil})
	require.Equal(t, term.Nil{}, out)
}

func TestDecode_StringExtProducesListOfFixIntegers(t *testing.T) {
	raw := []byte{VersionMagic, TagString, 0, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := decodeBytes(t, raw)

	want := term.List{
		Elements: []term.Term{
			term.FixInteger(1), term.FixInteger(2), term.FixInteger(3), term.FixInteger(4),
			term.FixInteger(5), term.FixInteger(6), term.FixInteger(7), term.FixInteger(8),
			term.FixInteger(9), term.FixInteger(10),
		},
		Tail: term.Nil{},
	}
	require.True(t, term.Equal(want, out))
}

func TestDecode_RejectsBadVersionMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{130, TagNil}))
	require.Error(t, err)
}

func TestDecode_UnknownTagFails(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{VersionMagic, 0xFF}))
	require.Error(t, err)
}

// TestDecode_CompressedEnvelope builds a COMPRESSED envelope at test time
// (rather than hand-deriving the zlib stream bytes) wrapping a 1029-byte
// BINARY_EXT of a single repeated value.
func TestDecode_CompressedEnvelope(t *testing.T) {
	plainBody := append([]byte{TagBinary, 0, 0, 4, 5}, bytes.Repeat([]byte{0x61}, 1029)...)

	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	_, err := zw.Write(plainBody)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	raw := []byte{VersionMagic, TagCompressed, 0, 0, 0, 0}
	raw = append(raw, zbuf.Bytes()...)

	out := decodeBytes(t, raw)
	bs, ok := out.(term.Bitstring)
	require.True(t, ok)
	require.True(t, bs.IsBinary())
	require.Len(t, bs.Bytes, 1029)
	for _, b := range bs.Bytes {
		require.Equal(t, byte(0x61), b)
	}
}

func TestDecoder_ChargesOneReductionPerDispatch(t *testing.T) {
	proc := process.Yielding(nil)
	d, err := NewDecoder(bytes.NewReader([]byte{VersionMagic, TagSmallInteger, 7}), WithProcess(proc))
	require.NoError(t, err)

	_, err = d.Decode()
	require.NoError(t, err)
	// Decode charges 1 on entry and dispatch charges 1 for the single
	// SMALL_INTEGER_EXT tag.
	require.Equal(t, 2, proc.Consumed())
}

func TestDecode_BigIntRoundTripsSign(t *testing.T) {
	// SMALL_BIG_EXT, n=2, sign=1 (negative), little-endian magnitude [0x01, 0x01] = 0x0101 = 257
	raw := []byte{VersionMagic, TagSmallBig, 2, 1, 0x01, 0x01}
	out := decodeBytes(t, raw)
	bi, ok := out.(term.BigInt)
	require.True(t, ok)
	require.Equal(t, -1, bi.Sign())
	require.Equal(t, "257", bi.String())
}

func TestDecode_BitBinaryCanonicalizesTrailingBits(t *testing.T) {
	// BIT_BINARY_EXT, len=1, bits=3, payload 0xFF -> canonical last byte 0xFF>>5 = 0x07
	raw := []byte{VersionMagic, TagBitBinary, 0, 0, 0, 1, 3, 0xFF}
	out := decodeBytes(t, raw)
	bs, ok := out.(term.Bitstring)
	require.True(t, ok)
	require.False(t, bs.IsBinary())
	require.Equal(t, uint8(3), bs.Bits)
	require.Equal(t, byte(0x07), bs.Bytes[0])
}

func TestDecode_NewFloatRejectsNaN(t *testing.T) {
	// NaN bit pattern: exponent all ones, non-zero mantissa
	raw := []byte{VersionMagic, TagNewFloat, 0x7F, 0xF8, 0, 0, 0, 0, 0, 0}
	_, err := Decode(bytes.NewReader(raw))
	require.Error(t, err)
}

func TestDecode_TupleAndList(t *testing.T) {
	// {1, [2, 3]}
	raw := []byte{
		VersionMagic, TagSmallTuple, 2,
		TagSmallInteger, 1,
		TagList, 0, 0, 0, 2,
		TagSmallInteger, 2,
		TagSmallInteger, 3,
		TagNil,
	}
	out := decodeBytes(t, raw)
	tup, ok := out.(term.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Elements, 2)
	require.Equal(t, term.FixInteger(1), tup.Elements[0])

	lst, ok := tup.Elements[1].(term.List)
	require.True(t, ok)
	require.Equal(t, term.FixInteger(2), lst.Elements[0])
	require.Equal(t, term.FixInteger(3), lst.Elements[1])
	require.True(t, term.IsNil(lst.Tail))
}

func TestDecode_NestedTupleErrorCarriesCauseToUnknownTag(t *testing.T) {
	// {1, {2, <bad tag>}}: the innermost element's tag byte is unrecognized.
	raw := []byte{
		VersionMagic, TagSmallTuple, 2,
		TagSmallInteger, 1,
		TagSmallTuple, 2,
		TagSmallInteger, 2,
		0xFF,
	}
	_, err := Decode(bytes.NewReader(raw))
	require.Error(t, err)

	var tagErr *errs.UnknownTagError
	require.ErrorAs(t, errors.Cause(err), &tagErr)
	require.Equal(t, byte(0xFF), tagErr.Tag)
}

func TestDecode_MapPreservesPairOrder(t *testing.T) {
	raw := []byte{
		VersionMagic, TagMap, 0, 0, 0, 2,
		TagSmallInteger, 1, TagSmallInteger, 10,
		TagSmallInteger, 2, TagSmallInteger, 20,
	}
	out := decodeBytes(t, raw)
	m, ok := out.(term.Map)
	require.True(t, ok)
	require.Len(t, m.Pairs, 2)
	require.Equal(t, term.FixInteger(1), m.Pairs[0].Key)
	require.Equal(t, term.FixInteger(20), m.Pairs[1].Value)
}
