package codec

import (
	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
)

// SizeEstimator is a TermVisitor that computes the exact byte count a wire
// encoding would produce, without allocating the output buffer (§4.2, §4.8).
type SizeEstimator struct {
	n int
}

var _ TermVisitor = (*SizeEstimator)(nil)
var _ sink = (*SizeEstimator)(nil)

// NewSizeEstimator returns an estimator ready to traverse one term.
func NewSizeEstimator() *SizeEstimator { return &SizeEstimator{} }

// Size returns the accumulated byte count after traversal completes.
func (e *SizeEstimator) Size() int { return e.n }

func (e *SizeEstimator) VisitOuter(t term.Term) Action      { return encodeHeader(t, e) }
func (e *SizeEstimator) Enter(_, child term.Term, _ Hint) Action { return encodeHeader(child, e) }
func (e *SizeEstimator) Exit(term.Term, Hint) Action             { return Continue }

func (e *SizeEstimator) PutU8(byte)       { e.n++ }
func (e *SizeEstimator) PutU16(uint16)    { e.n += 2 }
func (e *SizeEstimator) PutU32(uint32)    { e.n += 4 }
func (e *SizeEstimator) PutU64(uint64)    { e.n += 8 }
func (e *SizeEstimator) PutI32(int32)     { e.n += 4 }
func (e *SizeEstimator) PutBytes(b []byte) { e.n += len(b) }

// EncodeSize runs the size-estimator visitor over t and returns the byte
// count of the OUTER wire encoding (version magic + tagged term).
func EncodeSize(t term.Term) int {
	e := NewSizeEstimator()
	traverse(t, e, process.Blocking())

	return 1 + e.Size() // +1 for VersionMagic
}
