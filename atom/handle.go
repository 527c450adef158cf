package atom

// Handle is a cheap-to-copy, value-typed reference to an interned atom.
// Two handles compare equal iff they reference the same table and slot,
// which (since the table deduplicates by canonical UTF-8 form) is
// equivalent to the underlying atoms being identical.
//
// Handles are safe to share across the scheduler: dereferencing (Table.Get,
// or the convenience methods below) only ever reads immutable, append-only
// table state.
type Handle struct {
	table *Table
	slot  uint32
}

// Slot returns the handle's stable insertion-indexed slot number.
func (h Handle) Slot() uint32 { return h.slot }

// Record returns the full interned record this handle references.
func (h Handle) Record() *Record { return h.table.Get(h) }

// Bytes returns the canonical UTF-8 bytes of the referenced atom.
func (h Handle) Bytes() []byte { return h.Record().Bytes() }

// String returns the referenced atom's text.
func (h Handle) String() string { return h.Record().String() }

// Hash returns the referenced atom's canonical hash.
func (h Handle) Hash() uint32 { return h.Record().Hash() }

// Ord0 returns the referenced atom's canonical ordering prefix.
func (h Handle) Ord0() uint32 { return h.Record().Ord0() }

// Equal reports whether h and other reference the same interned atom.
func (h Handle) Equal(other Handle) bool {
	return h.table == other.table && h.slot == other.slot
}

// Compare implements the atom<->atom ordering leg of the term comparison
// invariant (§3.1): first by Ord0, then by full byte sequence.
func (h Handle) Compare(other Handle) int {
	if h.Equal(other) {
		return 0
	}

	return h.Record().compare(other.Record())
}
