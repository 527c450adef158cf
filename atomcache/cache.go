// Package atomcache implements the distribution atom cache (§3.4): a
// per-connection fixed-capacity slot array mapping a small integer index to
// an interned atom, shared mutably across a session by interior
// synchronization.
package atomcache

import (
	"sync/atomic"

	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/errs"
)

// Size is the fixed slot-array capacity (§6.3 ERTS_ATOM_CACHE_SIZE).
const Size = 2048

// UsableSize is the number of addressable slots: 9 low bits of usable space
// (§6.3 ERTS_USE_ATOM_CACHE_SIZE).
const UsableSize = 2039

// Cache is a fixed array of 2048 optional slots, shared across a session by
// per-slot atomic exchange (no coarse lock, no cross-slot transactionality).
type Cache struct {
	slots [Size]atomic.Pointer[atom.Handle]
}

// New creates an empty atom cache.
func New() *Cache {
	return &Cache{}
}

func checkRange(index int) error {
	if index < 0 || index >= Size {
		return &errs.OutOfRangeError{Value: int64(index), Range: "[0, 2048)"}
	}

	return nil
}

// Get returns the handle in slot index, or (zero, false) if the slot is empty.
func (c *Cache) Get(index int) (atom.Handle, bool, error) {
	if err := checkRange(index); err != nil {
		return atom.Handle{}, false, err
	}
	p := c.slots[index].Load()
	if p == nil {
		return atom.Handle{}, false, nil
	}

	return *p, true, nil
}

// Insert stores h in slot index, evicting and returning any prior occupant.
func (c *Cache) Insert(index int, h atom.Handle) (prior atom.Handle, hadPrior bool, err error) {
	if err := checkRange(index); err != nil {
		return atom.Handle{}, false, err
	}
	old := c.slots[index].Swap(&h)
	if old == nil {
		return atom.Handle{}, false, nil
	}

	return *old, true, nil
}

// Remove clears slot index, returning any prior occupant.
func (c *Cache) Remove(index int) (prior atom.Handle, hadPrior bool, err error) {
	if err := checkRange(index); err != nil {
		return atom.Handle{}, false, err
	}
	old := c.slots[index].Swap(nil)
	if old == nil {
		return atom.Handle{}, false, nil
	}

	return *old, true, nil
}

// IsEmpty reports whether slot index holds no atom. Advisory only: another
// goroutine may populate or clear the slot immediately after this returns.
func (c *Cache) IsEmpty(index int) (bool, error) {
	if err := checkRange(index); err != nil {
		return false, err
	}

	return c.slots[index].Load() == nil, nil
}
