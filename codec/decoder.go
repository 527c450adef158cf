package codec

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/atomcache"
	"github.com/etfgo/letf/compress"
	"github.com/etfgo/letf/errs"
	"github.com/etfgo/letf/internal/options"
	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// stringExtReductionChunk and stringExtReductionCost implement
// read_string_ext's extra charge: 5 reductions per 4096 bytes consumed past
// the first (§4.1 reduction schedule).
const (
	stringExtReductionChunk = 4096
	stringExtReductionCost  = 5
)

// Decoder reads a single External Term Format value from a byte source,
// charging the configured process.Handle's reduction budget as it goes.
type Decoder struct {
	src              byteSource
	proc             process.Handle
	atoms            *atom.Table
	cache            *atomcache.Cache
	distAtomEncoding atom.Encoding
	logger           zerolog.Logger

	msgRefs *atomcache.MessageRefs
}

// NewDecoder wraps r for reading a single ETF value. By default it uses
// process.Blocking() (no budget enforcement) and a fresh atom.Table; use
// WithProcess/WithAtomTable/WithAtomCache/WithDistAtomEncoding/WithLogger to
// override.
func NewDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	src, ok := r.(byteSource)
	if !ok {
		src = bufio.NewReader(r)
	}

	d := &Decoder{
		src:              src,
		proc:             process.Blocking(),
		atoms:            atom.NewTable(),
		distAtomEncoding: atom.Latin1,
		logger:           zerolog.Nop(),
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode is the package-level convenience wrapping NewDecoder+(*Decoder).Decode
// for one-shot callers (the common path the root façade re-exports).
func Decode(r io.Reader, opts ...DecoderOption) (term.Term, error) {
	d, err := NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// Decode reads version magic, the outer tag, and returns the fully
// materialized term (§4.1 entry and framing).
func (d *Decoder) Decode() (term.Term, error) {
	d.proc.BumpReds(1)

	magic, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if magic != VersionMagic {
		return nil, &errs.UnsupportedVersionError{Version: magic}
	}

	return d.decodeTagged()
}

// decodeTagged reads one tag byte and dispatches, handling the COMPRESSED
// envelope specially since it recurses into a nested decoder rather than
// producing a Term directly from its own payload.
func (d *Decoder) decodeTagged() (term.Term, error) {
	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}

	if tag == TagCompressed {
		return d.decodeCompressed()
	}

	return d.dispatch(tag)
}

func (d *Decoder) decodeCompressed() (term.Term, error) {
	// uncompressed size is informational only; the zlib stream is
	// self-terminating.
	if _, err := d.readU32(); err != nil {
		return nil, err
	}

	rest, err := io.ReadAll(d.src)
	if err != nil {
		return nil, &errs.IoError{Err: err}
	}

	plain, err := compress.NewZlibCodec().Decompress(rest)
	if err != nil {
		return nil, &errs.IoError{Err: err}
	}

	// The atom-cache-ref vector does NOT cross the compression boundary
	// (Open Question (b)): the nested decoder shares this decoder's process
	// handle and atom table but starts with no MessageRefs of its own.
	inner := &Decoder{
		src:              bytes.NewReader(plain),
		proc:             d.proc,
		atoms:            d.atoms,
		cache:            d.cache,
		distAtomEncoding: d.distAtomEncoding,
		logger:           d.logger,
	}

	return inner.dispatch2()
}

// dispatch2 reads one internal term starting from the tag byte (used for the
// inner term of a COMPRESSED envelope, which has no version magic of its
// own).
func (d *Decoder) dispatch2() (term.Term, error) {
	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}

	return d.dispatch(tag)
}

// dispatch charges the 1-reduction entry cost for every tag it routes,
// primitive and compound alike, and routes tag to its reader.
func (d *Decoder) dispatch(tag byte) (term.Term, error) {
	d.proc.BumpReds(1)

	switch tag {
	case TagSmallInteger:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return term.FixInteger(b), nil
	case TagInteger:
		v, err := d.readI32()
		if err != nil {
			return nil, err
		}

		return term.FixInteger(v), nil
	case TagFloat:
		return d.readFloatExt()
	case TagNewFloat:
		bits, err := d.readU64()
		if err != nil {
			return nil, err
		}
		f, ferr := term.NewFloat(math.Float64frombits(bits))
		if ferr != nil {
			return nil, ferr
		}

		return f, nil
	case TagAtom:
		return d.readAtomBody(2, atom.Latin1)
	case TagSmallAtom:
		return d.readAtomBody(1, atom.Latin1)
	case TagAtomUtf8:
		return d.readAtomBody(2, atom.Utf8)
	case TagSmallAtomUtf8:
		return d.readAtomBody(1, atom.Utf8)
	case TagAtomCacheRef:
		return d.readAtomCacheRefBody()
	case TagReference:
		return d.readReference(1, false)
	case TagNewReference:
		return d.readReference(0, false)
	case TagNewerReference:
		return d.readReference(0, true)
	case TagPort:
		return d.readPort(false)
	case TagNewPort:
		return d.readPort(true)
	case TagV4Port:
		return d.readV4Port()
	case TagPid:
		return d.readPid(false)
	case TagNewPid:
		return d.readPid(true)
	case TagSmallTuple:
		n, err := d.readU8()
		if err != nil {
			return nil, err
		}

		return d.readTupleBody(int(n))
	case TagLargeTuple:
		n, err := d.readU32()
		if err != nil {
			return nil, err
		}

		return d.readTupleBody(int(n))
	case TagNil:
		return term.Nil{}, nil
	case TagString:
		return d.readStringExt()
	case TagList:
		return d.readListExt()
	case TagBinary:
		return d.readBinaryExt()
	case TagBitBinary:
		return d.readBitBinaryExt()
	case TagSmallBig:
		n, err := d.readU8()
		if err != nil {
			return nil, err
		}

		return d.readBigExt(int(n))
	case TagLargeBig:
		n, err := d.readU32()
		if err != nil {
			return nil, err
		}

		return d.readBigExt(int(n))
	case TagNewFun:
		return d.readNewFunExt()
	case TagFun:
		return d.readFunExt()
	case TagExport:
		return d.readExportExt()
	case TagMap:
		return d.readMapExt()
	case TagDistHeader:
		return d.readDistHeader()
	case TagDistFragHeader:
		return nil, &errs.UnknownTagError{Tag: tag}
	default:
		return nil, &errs.UnknownTagError{Tag: tag}
	}
}

func (d *Decoder) readFloatExt() (term.Term, error) {
	raw, err := d.readFull(31)
	if err != nil {
		return nil, err
	}
	s := strings.TrimRight(string(raw), "\x00")
	f, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return nil, &errs.NonFiniteFloatError{Source: "FLOAT_EXT"}
	}

	return term.NewFloat(f)
}

func (d *Decoder) readAtomBody(lenBytes int, enc atom.Encoding) (term.Term, error) {
	n, err := d.readAtomLen(lenBytes)
	if err != nil {
		return nil, err
	}
	raw, err := d.readFull(n)
	if err != nil {
		return nil, err
	}

	return term.NewAtom(d.atoms.Intern(enc, raw)), nil
}

func (d *Decoder) readAtomLen(lenBytes int) (int, error) {
	if lenBytes == 1 {
		n, err := d.readU8()

		return int(n), err
	}
	n, err := d.readU16()

	return int(n), err
}

func (d *Decoder) readAtomCacheRefBody() (term.Term, error) {
	idx, err := d.readU8()
	if err != nil {
		return nil, err
	}

	h, err := d.refAt(int(idx))
	if err != nil {
		return nil, err
	}

	return term.NewAtom(h), nil
}

func (d *Decoder) refAt(idx int) (atom.Handle, error) {
	if d.msgRefs == nil || idx >= d.msgRefs.Len() {
		return atom.Handle{}, errs.ErrAtomCacheNotFound
	}

	return d.msgRefs.At(idx).Handle, nil
}

// readInternalAtom reads a tag byte and accepts only the atom-producing
// tags (plus ATOM_CACHE_REF), per §4.1's "read_internal_atom" sub-reader.
func (d *Decoder) readInternalAtom() (atom.Handle, error) {
	tag, err := d.readByte()
	if err != nil {
		return atom.Handle{}, err
	}

	switch tag {
	case TagAtom:
		t, err := d.readAtomBody(2, atom.Latin1)
		if err != nil {
			return atom.Handle{}, err
		}

		return t.(term.Atom).Handle, nil
	case TagSmallAtom:
		t, err := d.readAtomBody(1, atom.Latin1)
		if err != nil {
			return atom.Handle{}, err
		}

		return t.(term.Atom).Handle, nil
	case TagAtomUtf8:
		t, err := d.readAtomBody(2, atom.Utf8)
		if err != nil {
			return atom.Handle{}, err
		}

		return t.(term.Atom).Handle, nil
	case TagSmallAtomUtf8:
		t, err := d.readAtomBody(1, atom.Utf8)
		if err != nil {
			return atom.Handle{}, err
		}

		return t.(term.Atom).Handle, nil
	case TagAtomCacheRef:
		idx, err := d.readU8()
		if err != nil {
			return atom.Handle{}, err
		}

		return d.refAt(int(idx))
	default:
		return atom.Handle{}, &errs.UnexpectedTypeError{Tag: tag, Expected: "atom"}
	}
}

func (d *Decoder) readInternalI32() (int32, error) {
	tag, err := d.readByte()
	if err != nil {
		return 0, err
	}
	switch tag {
	case TagSmallInteger:
		b, err := d.readByte()

		return int32(b), err
	case TagInteger:
		return d.readI32()
	default:
		return 0, &errs.UnexpectedTypeError{Tag: tag, Expected: "i32"}
	}
}

func (d *Decoder) readInternalU8() (uint8, error) {
	tag, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if tag != TagSmallInteger {
		return 0, &errs.UnexpectedTypeError{Tag: tag, Expected: "u8"}
	}

	return d.readByte()
}

func (d *Decoder) readInternalPid() (term.Pid, error) {
	tag, err := d.readByte()
	if err != nil {
		return term.Pid{}, err
	}
	switch tag {
	case TagPid:
		return d.readPidBody(false)
	case TagNewPid:
		return d.readPidBody(true)
	default:
		return term.Pid{}, &errs.UnexpectedTypeError{Tag: tag, Expected: "pid"}
	}
}

func (d *Decoder) readReference(legacyIdWords int, creationU32 bool) (term.Term, error) {
	idCount := legacyIdWords
	if legacyIdWords == 0 {
		n, err := d.readU16()
		if err != nil {
			return nil, err
		}
		idCount = int(n)
	}
	if idCount > term.MaxReferenceWords {
		return nil, &errs.OutOfRangeError{Value: int64(idCount), Range: "[0, 5]"}
	}

	node, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}

	var creation uint32
	if creationU32 {
		creation, err = d.readU32()
	} else {
		var b uint8
		b, err = d.readInternalU8()
		creation = uint32(b)
	}
	if err != nil {
		return nil, err
	}

	var ids [term.MaxReferenceWords]uint32
	for i := range idCount {
		ids[i], err = d.readU32()
		if err != nil {
			return nil, err
		}
	}

	return term.Reference{Node: node, Ids: ids, IdCount: idCount, Creation: creation}, nil
}

func (d *Decoder) readPort(creationU32 bool) (term.Term, error) {
	node, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	id, err := d.readU32()
	if err != nil {
		return nil, err
	}
	var creation uint32
	if creationU32 {
		creation, err = d.readU32()
	} else {
		var b uint8
		b, err = d.readInternalU8()
		creation = uint32(b)
	}
	if err != nil {
		return nil, err
	}

	return term.Port{Node: node, Id: uint64(id), Creation: creation}, nil
}

func (d *Decoder) readV4Port() (term.Term, error) {
	node, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	id, err := d.readU64()
	if err != nil {
		return nil, err
	}
	creation, err := d.readU32()
	if err != nil {
		return nil, err
	}

	return term.Port{Node: node, Id: id, Creation: creation}, nil
}

func (d *Decoder) readPid(creationU32 bool) (term.Term, error) {
	p, err := d.readPidBody(creationU32)

	return p, err
}

func (d *Decoder) readPidBody(creationU32 bool) (term.Pid, error) {
	node, err := d.readInternalAtom()
	if err != nil {
		return term.Pid{}, err
	}
	id, err := d.readU32()
	if err != nil {
		return term.Pid{}, err
	}
	serial, err := d.readU32()
	if err != nil {
		return term.Pid{}, err
	}
	var creation uint32
	if creationU32 {
		creation, err = d.readU32()
	} else {
		var b uint8
		b, err = d.readInternalU8()
		creation = uint32(b)
	}
	if err != nil {
		return term.Pid{}, err
	}

	return term.Pid{Node: node, Id: id, Serial: serial, Creation: creation}, nil
}

// readTupleBody recurses into d.dispatch2 once per element, the decoder's
// deepest ordinary recursion site (a tuple nested in a tuple nested in a
// tuple...). Failures here are wrapped with a captured stack trace so a
// caller several frames removed from the actual malformed byte can still
// errors.Cause() back to the originating errs sentinel without walking a
// chain of "tuple element N" strings by hand.
func (d *Decoder) readTupleBody(arity int) (term.Term, error) {
	elems := make([]term.Term, arity)
	for i := range arity {
		t, err := d.dispatch2()
		if err != nil {
			return nil, errors.Wrapf(err, "tuple element %d of %d", i, arity)
		}
		elems[i] = t
	}

	return term.Tuple{Elements: elems}, nil
}

func (d *Decoder) readStringExt() (term.Term, error) {
	n, err := d.readU16()
	if err != nil {
		return nil, err
	}
	raw, err := d.readFull(int(n))
	if err != nil {
		return nil, err
	}
	if int(n) > stringExtReductionChunk {
		extra := (int(n) - stringExtReductionChunk + stringExtReductionChunk - 1) / stringExtReductionChunk
		d.proc.BumpReds(extra * stringExtReductionCost)
	}

	elems := make([]term.Term, n)
	for i, b := range raw {
		elems[i] = term.FixInteger(b)
	}

	return term.List{Elements: elems, Tail: term.Nil{}}, nil
}

func (d *Decoder) readListExt() (term.Term, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	elems := make([]term.Term, n)
	for i := range int(n) {
		t, err := d.dispatch2()
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	tail, err := d.dispatch2()
	if err != nil {
		return nil, err
	}

	return term.List{Elements: elems, Tail: tail}, nil
}

func (d *Decoder) readBinaryExt() (term.Term, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	raw, err := d.readFull(int(n))
	if err != nil {
		return nil, err
	}

	return term.Bitstring{Bytes: raw, Bits: 0}, nil
}

func (d *Decoder) readBitBinaryExt() (term.Term, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	tailBits, err := d.readU8()
	if err != nil {
		return nil, err
	}
	raw, err := d.readFull(int(n))
	if err != nil {
		return nil, err
	}
	if n > 0 && tailBits >= 1 && tailBits <= 7 {
		raw[n-1] = raw[n-1] >> (8 - tailBits)
	}

	return term.Bitstring{Bytes: raw, Bits: tailBits}, nil
}

func (d *Decoder) readBigExt(n int) (term.Term, error) {
	sign, err := d.readU8()
	if err != nil {
		return nil, err
	}
	digits, err := d.readFull(n)
	if err != nil {
		return nil, err
	}

	// digits are little-endian magnitude bytes; big.Int.SetBytes wants
	// big-endian, so reverse into a scratch buffer.
	be := make([]byte, n)
	for i, b := range digits {
		be[n-1-i] = b
	}

	v := new(big.Int).SetBytes(be)
	if sign == 1 {
		v.Neg(v)
	}

	return term.NewBigInt(v), nil
}

func (d *Decoder) readExportExt() (term.Term, error) {
	module, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	function, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	arity, err := d.readInternalU8()
	if err != nil {
		return nil, err
	}

	return term.ExternalFun{Module: module, Function: function, Arity: arity}, nil
}

func (d *Decoder) readFunExt() (term.Term, error) {
	numFree, err := d.readU32()
	if err != nil {
		return nil, err
	}
	pid, err := d.readInternalPid()
	if err != nil {
		return nil, err
	}
	module, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	index, err := d.readInternalI32()
	if err != nil {
		return nil, err
	}
	uniq, err := d.readInternalI32()
	if err != nil {
		return nil, err
	}
	freeVars, err := d.readFreeVars(int(numFree))
	if err != nil {
		return nil, err
	}

	return term.InternalFun{
		Variant:  term.FunOld,
		Module:   module,
		Pid:      pid,
		OldIndex: index,
		OldUniq:  uniq,
		FreeVars: freeVars,
	}, nil
}

func (d *Decoder) readNewFunExt() (term.Term, error) {
	if _, err := d.readU32(); err != nil { // size, informational
		return nil, err
	}
	arity, err := d.readU8()
	if err != nil {
		return nil, err
	}
	var uniq [16]byte
	uniqBytes, err := d.readFull(16)
	if err != nil {
		return nil, err
	}
	copy(uniq[:], uniqBytes)

	index, err := d.readU32()
	if err != nil {
		return nil, err
	}
	numFree, err := d.readU32()
	if err != nil {
		return nil, err
	}
	module, err := d.readInternalAtom()
	if err != nil {
		return nil, err
	}
	oldIndex, err := d.readInternalI32()
	if err != nil {
		return nil, err
	}
	oldUniq, err := d.readInternalI32()
	if err != nil {
		return nil, err
	}
	pid, err := d.readInternalPid()
	if err != nil {
		return nil, err
	}
	freeVars, err := d.readFreeVars(int(numFree))
	if err != nil {
		return nil, err
	}

	return term.InternalFun{
		Variant:  term.FunNew,
		Module:   module,
		Pid:      pid,
		Arity:    arity,
		Index:    int64(index),
		Uniq:     uniq,
		OldIndex: oldIndex,
		OldUniq:  oldUniq,
		FreeVars: freeVars,
	}, nil
}

func (d *Decoder) readFreeVars(n int) ([]term.Term, error) {
	vars := make([]term.Term, n)
	for i := range n {
		t, err := d.dispatch2()
		if err != nil {
			return nil, err
		}
		vars[i] = t
	}

	return vars, nil
}

func (d *Decoder) readMapExt() (term.Term, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	pairs := make([]term.MapPair, n)
	for i := range int(n) {
		key, err := d.dispatch2()
		if err != nil {
			return nil, err
		}
		value, err := d.dispatch2()
		if err != nil {
			return nil, err
		}
		pairs[i] = term.MapPair{Key: key, Value: value}
	}

	return term.Map{Pairs: pairs}, nil
}
