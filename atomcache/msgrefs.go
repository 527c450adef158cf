package atomcache

import "github.com/etfgo/letf/errs"

// MaxMessageRefs is ERTS_MAX_INTERNAL_ATOM_CACHE_ENTRIES: the largest
// number of atom-cache references a single DIST_HEADER may declare.
const MaxMessageRefs = 255

// MessageRefs is the ordered, per-message atom-cache-ref vector a
// DIST_HEADER carries (§4.4). Order is significant: later terms in the same
// message refer back into this vector by position, not by cache index.
type MessageRefs struct {
	refs []AtomRef
}

// NewMessageRefs returns an empty vector ready to accumulate up to
// MaxMessageRefs entries.
func NewMessageRefs() *MessageRefs {
	return &MessageRefs{}
}

// Add appends ref to the vector, rejecting the insert once MaxMessageRefs
// entries have accumulated.
func (m *MessageRefs) Add(ref AtomRef) error {
	if len(m.refs) >= MaxMessageRefs {
		return errs.ErrTooManyCacheRefs
	}
	m.refs = append(m.refs, ref)

	return nil
}

// Len returns the number of references accumulated so far.
func (m *MessageRefs) Len() int { return len(m.refs) }

// At returns the reference at position i.
func (m *MessageRefs) At(i int) AtomRef { return m.refs[i] }

// All returns the accumulated references in encounter order.
func (m *MessageRefs) All() []AtomRef {
	out := make([]AtomRef, len(m.refs))
	copy(out, m.refs)

	return out
}
