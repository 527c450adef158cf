// Package letf is the thin root façade over the codec, atom, and atomcache
// packages: a single-call Decode/Encode pair for callers that don't need
// process-budget enforcement, a custom atom table, or distribution-header
// support, plus NewAtomTable for callers who do.
package letf

import (
	"io"

	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/codec"
	"github.com/etfgo/letf/term"
)

// Decode reads a single External Term Format value from r (§4.1). The
// decoder uses a fresh atom.Table and no reduction-budget enforcement; use
// the codec package directly for more control.
func Decode(r io.Reader) (term.Term, error) {
	return codec.Decode(r)
}

// Encode writes t to w as a single External Term Format value, returning the
// number of bytes written (§4.2). Use the codec package directly for more
// control.
func Encode(w io.Writer, t term.Term) (int, error) {
	return codec.Encode(w, t)
}

// NewAtomTable returns a fresh atom interner, for callers that want to share
// one atom.Table across several codec.Decode/codec.NewDecoder calls (through
// codec.WithAtomTable) so repeated atoms resolve to the same Handle. Decode
// in this package takes no table and always uses a fresh one.
func NewAtomTable() *atom.Table {
	return atom.NewTable()
}
