package codec

import (
	"github.com/etfgo/letf/internal/pool"
	"github.com/etfgo/letf/term"
)

// ByteEmitter is the TermVisitor that writes a term's wire encoding to a
// scratch buffer (§4.2, §4.8), backed by the teacher's
// internal/pool.ByteBuffer rather than a bare []byte append. Each emitter
// owns its own buffer; Encode builds a new emitter per call, so buffers are
// not reused across encode calls.
type ByteEmitter struct {
	buf *pool.ByteBuffer
	tmp [8]byte
}

var _ TermVisitor = (*ByteEmitter)(nil)
var _ sink = (*ByteEmitter)(nil)

// NewByteEmitter returns an emitter backed by a newly allocated buffer (not
// taken from a pool) sized for typical ETF messages.
func NewByteEmitter() *ByteEmitter {
	return &ByteEmitter{buf: pool.NewByteBuffer(pool.BlobBufferDefaultSize)}
}

// Bytes returns the accumulated wire bytes (the tagged term only, not the
// version magic — Encode prepends that separately).
func (e *ByteEmitter) Bytes() []byte { return e.buf.Bytes() }

func (e *ByteEmitter) VisitOuter(t term.Term) Action          { return encodeHeader(t, e) }
func (e *ByteEmitter) Enter(_, child term.Term, _ Hint) Action { return encodeHeader(child, e) }
func (e *ByteEmitter) Exit(term.Term, Hint) Action             { return Continue }

func (e *ByteEmitter) PutU8(b byte) { e.buf.MustWrite([]byte{b}) }

func (e *ByteEmitter) PutU16(v uint16) {
	wireEndian.PutUint16(e.tmp[:2], v)
	e.buf.MustWrite(e.tmp[:2])
}

func (e *ByteEmitter) PutU32(v uint32) {
	wireEndian.PutUint32(e.tmp[:4], v)
	e.buf.MustWrite(e.tmp[:4])
}

func (e *ByteEmitter) PutU64(v uint64) {
	wireEndian.PutUint64(e.tmp[:8], v)
	e.buf.MustWrite(e.tmp[:8])
}

func (e *ByteEmitter) PutI32(v int32) { e.PutU32(uint32(v)) }

func (e *ByteEmitter) PutBytes(b []byte) { e.buf.MustWrite(b) }
