package atomcache

import (
	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/internal/hash"
)

// Session pairs a Cache with a stable fingerprinting function used to pick
// a deterministic starting slot for first-touch atoms, so two independent
// encoders sharing no prior traffic still tend to agree on cache layout for
// frequently-used atoms (module names, common function names).
type Session struct {
	Cache *Cache
}

// NewSession wraps cache in a Session.
func NewSession(cache *Cache) *Session {
	return &Session{Cache: cache}
}

// Fingerprint returns a stable, evenly-distributed slot hint in
// [0, UsableSize) for h, derived from the atom's canonical byte sequence via
// xxhash. It is advisory: callers remain free to place the atom in any
// empty or evictable slot.
func (s *Session) Fingerprint(h atom.Handle) int {
	return int(hash.Bytes(h.Bytes()) % uint64(UsableSize))
}
