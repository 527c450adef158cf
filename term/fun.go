package term

import "github.com/etfgo/letf/atom"

// ExternalFun models EXPORT_EXT: a {module, function, arity} triple
// referencing an exported function, not a closure.
type ExternalFun struct {
	Module   atom.Handle
	Function atom.Handle
	Arity    uint8
}

func (ExternalFun) Kind() Kind { return KindFun }
func (ExternalFun) isTerm()    {}

// FunVariant distinguishes the legacy FUN_EXT closure layout from the
// current NEW_FUN_EXT layout.
type FunVariant uint8

const (
	// FunOld models FUN_EXT (tag 'u'): no explicit arity field, no uniq digest.
	FunOld FunVariant = iota
	// FunNew models NEW_FUN_EXT (tag 'p'): carries an explicit arity and a
	// 16-byte uniq digest in place of the legacy index/uniq pair.
	FunNew
)

// InternalFun models an internal closure (FUN_EXT/NEW_FUN_EXT): module,
// arity, owning pid, free variables, index, uniq digest, and (for the New
// variant) the legacy old_index/old_uniq fields the wire format still
// carries even though the host runtime no longer interprets them for
// dispatch (§3.7).
type InternalFun struct {
	Variant FunVariant
	Module  atom.Handle
	Pid     Pid
	// Arity is only populated for FunNew; FUN_EXT carries no arity field.
	Arity uint8
	// Index is the New variant's u32 index. Zero for FunOld, whose i32
	// index is carried in OldIndex.
	Index int64
	// Uniq is the New variant's 16-byte digest. Zero for FunOld, which
	// instead uses OldUniq (aliased from its own i32 uniq field).
	Uniq [16]byte
	// OldIndex/OldUniq carry FUN_EXT's i32 index/uniq pair when Variant ==
	// FunOld, and NEW_FUN_EXT's legacy old_index/old_uniq pair when Variant
	// == FunNew.
	OldIndex int32
	OldUniq  int32
	FreeVars []Term
}

func (InternalFun) Kind() Kind { return KindFun }
func (InternalFun) isTerm()    {}
