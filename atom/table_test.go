package atom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_InternDeduplicates(t *testing.T) {
	tbl := NewTable()

	h1 := tbl.Intern(Utf8, []byte("hello"))
	h2 := tbl.Intern(Utf8, []byte("hello"))

	require.True(t, h1.Equal(h2))
	require.Equal(t, 1, tbl.Len())
}

func TestTable_Canonicalization(t *testing.T) {
	tbl := NewTable()

	// Latin-1 0xE9 is U+00E9 ("é"), UTF-8-source é is 0xC3 0xA9.
	latin1 := tbl.Intern(Latin1, []byte{0xE9})
	utf8 := tbl.Intern(Utf8, []byte{0xC3, 0xA9})

	require.True(t, latin1.Equal(utf8), "Latin-1 and UTF-8 sources of the same character must intern to the same handle")
	require.Equal(t, latin1.Hash(), utf8.Hash())
	require.Equal(t, latin1.Ord0(), utf8.Ord0())
}

func TestTable_DistinctAtomsGetDistinctSlots(t *testing.T) {
	tbl := NewTable()

	a := tbl.Intern(Utf8, []byte("a"))
	b := tbl.Intern(Utf8, []byte("b"))

	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Slot(), b.Slot())
}

func TestTable_GrowsBeyondInitialCapacity(t *testing.T) {
	tbl := NewTableWithCapacity(2)

	for i := range 10 {
		tbl.Intern(Utf8, []byte{byte('a' + i)})
	}

	require.Equal(t, 10, tbl.Len())
}

func TestTable_ConcurrentIntern(t *testing.T) {
	tbl := NewTable()

	var wg sync.WaitGroup
	handles := make([]Handle, 64)
	for i := range 64 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = tbl.Intern(Utf8, []byte("shared"))
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(handles); i++ {
		require.True(t, handles[0].Equal(handles[i]))
	}
	require.Equal(t, 1, tbl.Len())
}

func TestHandle_CompareOrdersByOrd0ThenBytes(t *testing.T) {
	tbl := NewTable()

	a := tbl.Intern(Utf8, []byte("aaaa"))
	b := tbl.Intern(Utf8, []byte("bbbb"))

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestRecord_IterYieldsCanonicalBytes(t *testing.T) {
	tbl := NewTable()
	h := tbl.Intern(Latin1, []byte{0xE9})

	var out []byte
	for b := range h.Record().Iter() {
		out = append(out, b)
	}
	require.Equal(t, []byte{0xC3, 0xA9}, out)
}
