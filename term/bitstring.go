package term

// Bitstring is a byte buffer with a trailing partial-bit count (0-7).
// IsBinary is true when Bits == 0 (a whole-byte binary, BINARY_EXT).
type Bitstring struct {
	Bytes []byte
	Bits  uint8
}

func NewBinary(b []byte) Bitstring { return Bitstring{Bytes: b, Bits: 0} }

func (Bitstring) Kind() Kind { return KindBitstring }
func (Bitstring) isTerm()    {}

// IsBinary reports whether b represents a whole-byte binary.
func (b Bitstring) IsBinary() bool { return b.Bits == 0 }
