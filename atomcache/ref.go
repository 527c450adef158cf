package atomcache

import "github.com/etfgo/letf/atom"

// AtomRef is a single entry in a DIST_HEADER's atom-cache-ref vector (§4.4):
// a cache slot index paired with the "new entry" flag and the interned atom
// handle the slot resolves to.
type AtomRef struct {
	Index    int
	IsNew    bool
	Handle   atom.Handle
	SegIndex uint8 // high 3 bits of the cache index (§4.4); left zero by NewAtomRef, NewAtomRefNew and the decoder
	LongBit  bool  // left false by NewAtomRef, NewAtomRefNew and the decoder
}

// NewAtomRef builds a reference for cache slot index that already holds the
// resident atom (IsNew=false, no text transmitted).
func NewAtomRef(index int, h atom.Handle) AtomRef {
	return AtomRef{Index: index, IsNew: false, Handle: h}
}

// NewAtomRefNew builds a reference for cache slot index that has not yet
// been populated on the peer and therefore must carry the atom's text.
func NewAtomRefNew(index int, h atom.Handle) AtomRef {
	return AtomRef{Index: index, IsNew: true, Handle: h}
}
