package letf

import (
	"bytes"
	"testing"

	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/term"
	"github.com/stretchr/testify/require"
)

// TestDecode verifies the façade's one-shot Decode matches codec.Decode.
func TestDecode(t *testing.T) {
	out, err := Decode(bytes.NewReader([]byte{131, 97, 42}))

	require.NoError(t, err)
	require.Equal(t, term.FixInteger(42), out)
}

// TestEncode verifies the façade's one-shot Encode round-trips through Decode.
func TestEncode(t *testing.T) {
	var buf bytes.Buffer

	n, err := Encode(&buf, term.Nil{})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	out, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, term.Nil{}, out)
}

// TestNewAtomTable verifies a shared table lets repeated atoms resolve to
// the same Handle across independent Intern calls.
func TestNewAtomTable(t *testing.T) {
	tbl := NewAtomTable()
	require.IsType(t, &atom.Table{}, tbl)

	a := tbl.Intern(atom.Utf8, []byte("ok"))
	b := tbl.Intern(atom.Utf8, []byte("ok"))
	require.True(t, a.Equal(b))
}
