package term

import "github.com/etfgo/letf/atom"

// MaxReferenceWords is the maximum number of id words a Reference may carry
// (§3.7, grounded on the original source capping NEW_REFERENCE_EXT/
// NEWER_REFERENCE_EXT ids at 5 words).
const MaxReferenceWords = 5

// Reference models REFERENCE_EXT/NEW_REFERENCE_EXT/NEWER_REFERENCE_EXT.
//
// Ids is stored as a fixed array plus a count rather than a slice to avoid
// a heap allocation per decoded reference, which matters on the decoder's
// hot path; decoding rejects id_count > MaxReferenceWords with OutOfRange.
type Reference struct {
	Node     atom.Handle
	Ids      [MaxReferenceWords]uint32
	IdCount  int
	Creation uint32
}

func (Reference) Kind() Kind { return KindReference }
func (Reference) isTerm()    {}

// IdWords returns the populated leading slice of Ids.
func (r Reference) IdWords() []uint32 { return r.Ids[:r.IdCount] }
