package atomcache

import (
	"testing"

	"github.com/etfgo/letf/atom"
	"github.com/stretchr/testify/require"
)

func TestSession_FingerprintIsStableAndInRange(t *testing.T) {
	tbl := atom.NewTable()
	h := tbl.Intern(atom.Utf8, []byte("erlang"))

	s := NewSession(New())
	f1 := s.Fingerprint(h)
	f2 := s.Fingerprint(h)

	require.Equal(t, f1, f2)
	require.GreaterOrEqual(t, f1, 0)
	require.Less(t, f1, UsableSize)
}

func TestSession_FingerprintVariesByAtom(t *testing.T) {
	tbl := atom.NewTable()
	a := tbl.Intern(atom.Utf8, []byte("alpha"))
	b := tbl.Intern(atom.Utf8, []byte("beta"))

	s := NewSession(New())
	require.NotEqual(t, s.Fingerprint(a), s.Fingerprint(b))
}
