package term

import (
	"math/big"
	"testing"

	"github.com/etfgo/letf/atom"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "Number", KindNumber.String())
	require.Equal(t, "Bitstring", KindBitstring.String())
}

func TestBigInt_WrapsSignCorrectly(t *testing.T) {
	neg := NewBigInt(big.NewInt(-42))
	require.Equal(t, KindNumber, neg.Kind())
	require.Equal(t, -1, neg.Sign())
}

func TestReference_IdWords(t *testing.T) {
	r := Reference{IdCount: 2, Ids: [MaxReferenceWords]uint32{10, 20, 0, 0, 0}}
	require.Equal(t, []uint32{10, 20}, r.IdWords())
}

func TestInternalFun_NewVariantCarriesLegacyFields(t *testing.T) {
	tbl := atom.NewTable()
	mod := tbl.Intern(atom.Utf8, []byte("erl_eval"))

	f := InternalFun{
		Variant:  FunNew,
		Module:   mod,
		Arity:    1,
		OldIndex: -1,
		OldUniq:  0,
	}
	require.Equal(t, FunNew, f.Variant)
	require.Equal(t, int32(-1), f.OldIndex)
}

func TestDist_KindIsNilPlaceholder(t *testing.T) {
	var d Term = Dist{NumRefs: 5}
	require.Equal(t, KindNil, d.Kind())
}
