package atom

import (
	"sync"
	"sync/atomic"
)

// DefaultTableCapacity is the default starting slot capacity of a new Table (§6.3).
const DefaultTableCapacity = 4096

// Table is the process-global atom interner: a mapping from canonical UTF-8
// key to a stable Handle, plus a stable insertion-indexed entry list.
//
// The read path (Get, Intern on a hit) is lock-free: sync.Map.Load never
// blocks a concurrent writer, and entries is published through an
// atomic.Pointer so readers holding a previously-returned Handle never
// observe a torn slice. Only a miss in Intern takes the writer mutex, which
// re-checks the index before inserting (the standard check/lock/re-check
// shape). Entries are append-only and never removed for the life of the
// table.
type Table struct {
	index   sync.Map // string (canonical UTF-8) -> uint32 slot
	entries atomic.Pointer[[]*Record]
	mu      sync.Mutex // serializes writers only
	cap     int        // current backing capacity, grown to next power of two
}

// NewTable creates an atom table with DefaultTableCapacity starting capacity.
func NewTable() *Table {
	return NewTableWithCapacity(DefaultTableCapacity)
}

// NewTableWithCapacity creates an atom table with the given starting
// capacity, rounded up to the next power of two.
func NewTableWithCapacity(capacity int) *Table {
	capacity = nextPowerOfTwo(capacity)
	entries := make([]*Record, 0, capacity)

	t := &Table{cap: capacity}
	t.entries.Store(&entries)

	return t
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Intern returns the existing Handle for the canonical form of raw (under
// the given source encoding) or creates a new one.
func (t *Table) Intern(source Encoding, raw []byte) Handle {
	key := string(canonicalize(raw, source))

	if slot, ok := t.index.Load(key); ok {
		return Handle{table: t, slot: slot.(uint32)}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check: another writer may have interned this key while we waited.
	if slot, ok := t.index.Load(key); ok {
		return Handle{table: t, slot: slot.(uint32)}
	}

	entries := *t.entries.Load()
	if len(entries) == cap(entries) {
		entries = t.grow(entries)
	}

	rec := newRecord(raw, source)
	slot := uint32(len(entries))
	entries = append(entries, rec)
	t.entries.Store(&entries)
	t.index.Store(key, slot)

	return Handle{table: t, slot: slot}
}

// grow doubles the backing capacity (caller must hold t.mu).
func (t *Table) grow(entries []*Record) []*Record {
	t.cap = nextPowerOfTwo(t.cap + 1)
	grown := make([]*Record, len(entries), t.cap)
	copy(grown, entries)

	return grown
}

// Get returns the Record backing h. Panics if h does not belong to this
// table or its slot is out of range, both of which indicate a programming
// error (Handles are only ever minted by Intern).
func (t *Table) Get(h Handle) *Record {
	if h.table != t {
		panic("atom: handle does not belong to this table")
	}
	entries := *t.entries.Load()

	return entries[h.slot]
}

// Len returns the number of interned atoms.
func (t *Table) Len() int {
	entries := *t.entries.Load()

	return len(entries)
}
