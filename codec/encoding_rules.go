package codec

import (
	"math"
	"math/big"

	"github.com/etfgo/letf/term"
)

// stringExtMaxLen is STRING_EXT's u16 length field ceiling (§4.2 tag
// selection: "length < 65536").
const stringExtMaxLen = 65536

// smallFormMaxLen is the n < 256 byte threshold separating the Small and
// Large forms of tuples, atoms, and bignums.
const smallFormMaxLen = 256

// encodeHeader writes t's own tag and fixed-size fields to s (everything
// except recursive sub-terms, which the traversal driver visits
// separately), following §4.2's size-minimizing tag selection rules. It
// returns Skip when t's children must NOT be independently traversed
// because encodeHeader already emitted them inline (the STRING_EXT and
// empty-proper-list fast paths), Continue otherwise.
func encodeHeader(t term.Term, s sink) Action {
	switch v := t.(type) {
	case term.FixInteger:
		encodeFixInteger(v, s)
	case term.BigInt:
		encodeBigInt(v.Int, s)
	case term.Float:
		s.PutU8(TagNewFloat)
		s.PutU64(math.Float64bits(float64(v)))
	case term.Atom:
		encodeAtom(v, s)
	case term.Reference:
		encodeReference(v, s)
	case term.Port:
		s.PutU8(TagV4Port)
		encodeAtom(term.NewAtom(v.Node), s)
		s.PutU64(v.Id)
		s.PutU32(v.Creation)
	case term.Pid:
		s.PutU8(TagNewPid)
		encodeAtom(term.NewAtom(v.Node), s)
		s.PutU32(v.Id)
		s.PutU32(v.Serial)
		s.PutU32(v.Creation)
	case term.ExternalFun:
		s.PutU8(TagExport)
		encodeAtom(term.NewAtom(v.Module), s)
		encodeAtom(term.NewAtom(v.Function), s)
		s.PutU8(TagSmallInteger) // read_internal_u8 expects a tag byte ahead of the value
		s.PutU8(v.Arity)
	case term.InternalFun:
		encodeInternalFunHeader(v, s)
	case term.Tuple:
		encodeTupleHeader(v, s)
	case term.Map:
		s.PutU8(TagMap)
		s.PutU32(uint32(len(v.Pairs)))
	case term.Nil:
		s.PutU8(TagNil)
	case term.List:
		return encodeListHeader(v, s)
	case term.Bitstring:
		encodeBitstring(v, s)
	case term.Dist:
		// Dist is a decode-only placeholder (§4.4); the encoder never emits
		// a DIST_HEADER for it.
	}

	return Continue
}

func encodeFixInteger(v term.FixInteger, s sink) {
	if v >= 0 && v <= 255 {
		s.PutU8(TagSmallInteger)
		s.PutU8(byte(v))

		return
	}
	s.PutU8(TagInteger)
	s.PutI32(int32(v))
}

func encodeBigInt(v *big.Int, s sink) {
	sign := byte(0)
	if v.Sign() < 0 {
		sign = 1
	}

	mag := new(big.Int).Abs(v).Bytes() // big-endian, minimal
	le := make([]byte, len(mag))
	for i, b := range mag {
		le[len(mag)-1-i] = b
	}

	if len(le) < smallFormMaxLen {
		s.PutU8(TagSmallBig)
		s.PutU8(byte(len(le)))
	} else {
		s.PutU8(TagLargeBig)
		s.PutU32(uint32(len(le)))
	}
	s.PutU8(sign)
	s.PutBytes(le)
}

func encodeAtom(a term.Atom, s sink) {
	text := a.Handle.Bytes()
	if len(text) < smallFormMaxLen {
		s.PutU8(TagSmallAtomUtf8)
		s.PutU8(byte(len(text)))
	} else {
		s.PutU8(TagAtomUtf8)
		s.PutU16(uint16(len(text)))
	}
	s.PutBytes(text)
}

func encodeReference(r term.Reference, s sink) {
	s.PutU8(TagNewerReference)
	s.PutU16(uint16(r.IdCount))
	encodeAtom(term.NewAtom(r.Node), s)
	s.PutU32(r.Creation)
	for _, id := range r.IdWords() {
		s.PutU32(id)
	}
}

func encodeTupleHeader(v term.Tuple, s sink) {
	if len(v.Elements) < smallFormMaxLen {
		s.PutU8(TagSmallTuple)
		s.PutU8(byte(len(v.Elements)))
	} else {
		s.PutU8(TagLargeTuple)
		s.PutU32(uint32(len(v.Elements)))
	}
}

func encodeInternalFunHeader(v term.InternalFun, s sink) {
	if v.Variant == term.FunOld {
		s.PutU8(TagFun)
		s.PutU32(uint32(len(v.FreeVars)))
		encodePidHeader(v.Pid, s)
		encodeAtom(term.NewAtom(v.Module), s)
		s.PutU8(TagInteger)
		s.PutI32(v.OldIndex)
		s.PutU8(TagInteger)
		s.PutI32(v.OldUniq)

		return
	}

	s.PutU8(TagNewFun)
	sizePlaceholder(s)
	s.PutU8(v.Arity)
	s.PutBytes(v.Uniq[:])
	s.PutU32(uint32(v.Index))
	s.PutU32(uint32(len(v.FreeVars)))
	encodeAtom(term.NewAtom(v.Module), s)
	s.PutU8(TagInteger)
	s.PutI32(v.OldIndex)
	s.PutU8(TagInteger)
	s.PutI32(v.OldUniq)
	encodePidHeader(v.Pid, s)
}

// encodePidHeader writes a Pid the way readInternalPid expects: its own
// internal-term tag followed by the fixed body, not via the generic
// dispatch path (a Pid nested in a fun header is never an independently
// traversed child).
func encodePidHeader(p term.Pid, s sink) {
	s.PutU8(TagNewPid)
	encodeAtom(term.NewAtom(p.Node), s)
	s.PutU32(p.Id)
	s.PutU32(p.Serial)
	s.PutU32(p.Creation)
}

// sizePlaceholder writes NEW_FUN_EXT's informational size field. The exact
// value isn't re-derivable without a second pass over the already-written
// bytes, so this library writes 0: decoders (including this package's own)
// treat it as informational only, never as a length to seek by.
func sizePlaceholder(s sink) {
	s.PutU32(0)
}

func encodeListHeader(v term.List, s sink) Action {
	if len(v.Elements) == 0 && term.IsNil(v.Tail) {
		s.PutU8(TagNil)

		return Skip
	}

	if term.IsNil(v.Tail) && len(v.Elements) < stringExtMaxLen && allU8(v.Elements) {
		s.PutU8(TagString)
		s.PutU16(uint16(len(v.Elements)))
		for _, e := range v.Elements {
			s.PutU8(byte(e.(term.FixInteger)))
		}

		return Skip
	}

	s.PutU8(TagList)
	s.PutU32(uint32(len(v.Elements)))

	return Continue
}

func allU8(elems []term.Term) bool {
	for _, e := range elems {
		fi, ok := e.(term.FixInteger)
		if !ok || fi < 0 || fi > 255 {
			return false
		}
	}

	return true
}

func encodeBitstring(v term.Bitstring, s sink) {
	if v.IsBinary() {
		s.PutU8(TagBinary)
		s.PutU32(uint32(len(v.Bytes)))
		s.PutBytes(v.Bytes)

		return
	}

	s.PutU8(TagBitBinary)
	s.PutU32(uint32(len(v.Bytes)))
	s.PutU8(v.Bits)
	s.PutBytes(v.Bytes)
}
