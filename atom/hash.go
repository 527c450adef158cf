package atom

// Hash computes the canonical atom hash: a left-shift-by-4 Aho-Corasick-style
// "pjw" variant over the atom's UTF-8 bytes.
//
// The algorithm is mandated bit-exact by the wire protocol (ordering and atom
// cache indexing both observe it indirectly through Ord0/hash-derived code
// paths in the original runtime), so it is implemented directly rather than
// delegated to a general-purpose hash package: hash("foo") == 0x6D5F and
// hash("") == 0 are spot-checked in hash_test.go.
func Hash(utf8 []byte) uint32 {
	var h uint32
	for _, b := range utf8 {
		h = (h << 4) + uint32(b)
		g := h & 0xF0000000
		if g != 0 {
			h = (h ^ (g >> 24)) ^ g
		}
	}

	return h
}

// ord0 computes the 4-byte canonical prefix word used for fast ordering:
// the first four UTF-8 bytes of the canonical form, zero-padded, packed as
// ord0 = (c0<<23) + (c1<<15) + (c2<<7) + (c3>>1).
func ord0(utf8 []byte) uint32 {
	var c [4]byte
	n := len(utf8)
	if n > 4 {
		n = 4
	}
	copy(c[:n], utf8[:n])

	return (uint32(c[0]) << 23) + (uint32(c[1]) << 15) + (uint32(c[2]) << 7) + (uint32(c[3]) >> 1)
}
