package term

import "github.com/etfgo/letf/atom"

// Atom is a Term wrapping an interned atom.Handle.
type Atom struct {
	Handle atom.Handle
}

func NewAtom(h atom.Handle) Atom { return Atom{Handle: h} }

func (Atom) Kind() Kind { return KindAtom }
func (Atom) isTerm()    {}
