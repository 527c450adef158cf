package term

import "bytes"

// Compare implements the canonical term ordering (§3.1): number < atom <
// reference < fun < port < pid < tuple < map < nil < list < bitstring,
// structural within a Kind. Returns -1, 0, or 1.
func Compare(a, b Term) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}

		return 1
	}

	switch a.Kind() {
	case KindNumber:
		return compareNumber(a, b)
	case KindAtom:
		return a.(Atom).Handle.Compare(b.(Atom).Handle)
	case KindReference:
		return compareReference(a.(Reference), b.(Reference))
	case KindFun:
		return compareFun(a, b)
	case KindPort:
		return comparePort(a.(Port), b.(Port))
	case KindPid:
		return comparePid(a.(Pid), b.(Pid))
	case KindTuple:
		return compareTermSlice(a.(Tuple).Elements, b.(Tuple).Elements)
	case KindMap:
		return compareMap(a.(Map), b.(Map))
	case KindNil:
		return 0
	case KindList:
		return compareList(a.(List), b.(List))
	case KindBitstring:
		return compareBitstring(a.(Bitstring), b.(Bitstring))
	default:
		return 0
	}
}

// Equal reports structural equality under Compare, with float equality
// using total ordering over finite values (NaN/Infinity are never
// admissible Float values, per §3.1).
func Equal(a, b Term) bool { return Compare(a, b) == 0 }

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareReference(a, b Reference) int {
	if c := a.Node.Compare(b.Node); c != 0 {
		return c
	}
	if c := compareUint32(a.Creation, b.Creation); c != 0 {
		return c
	}
	if a.IdCount != b.IdCount {
		if a.IdCount < b.IdCount {
			return -1
		}

		return 1
	}
	for i := range a.IdCount {
		if c := compareUint32(a.Ids[i], b.Ids[i]); c != 0 {
			return c
		}
	}

	return 0
}

func comparePort(a, b Port) int {
	if c := a.Node.Compare(b.Node); c != 0 {
		return c
	}
	if c := compareUint64(a.Id, b.Id); c != 0 {
		return c
	}

	return compareUint32(a.Creation, b.Creation)
}

func comparePid(a, b Pid) int {
	if c := a.Node.Compare(b.Node); c != 0 {
		return c
	}
	if c := compareUint32(a.Id, b.Id); c != 0 {
		return c
	}
	if c := compareUint32(a.Serial, b.Serial); c != 0 {
		return c
	}

	return compareUint32(a.Creation, b.Creation)
}

func compareFun(a, b Term) int {
	switch av := a.(type) {
	case ExternalFun:
		bv, ok := b.(ExternalFun)
		if !ok {
			return -1 // ExternalFun sorts before InternalFun, an arbitrary but stable tie-break
		}
		if c := av.Module.Compare(bv.Module); c != 0 {
			return c
		}
		if c := av.Function.Compare(bv.Function); c != 0 {
			return c
		}

		return compareInt(int(av.Arity), int(bv.Arity))
	case InternalFun:
		bv, ok := b.(InternalFun)
		if !ok {
			return 1
		}
		if c := av.Module.Compare(bv.Module); c != 0 {
			return c
		}
		if c := comparePid(av.Pid, bv.Pid); c != 0 {
			return c
		}
		if av.Index != bv.Index {
			if av.Index < bv.Index {
				return -1
			}

			return 1
		}
		if c := bytes.Compare(av.Uniq[:], bv.Uniq[:]); c != 0 {
			return c
		}
		if c := compareInt(int(av.Variant), int(bv.Variant)); c != 0 {
			return c
		}
		if c := compareInt(int(av.Arity), int(bv.Arity)); c != 0 {
			return c
		}
		if c := compareInt(int(av.OldIndex), int(bv.OldIndex)); c != 0 {
			return c
		}
		if c := compareInt(int(av.OldUniq), int(bv.OldUniq)); c != 0 {
			return c
		}

		return compareTermSlice(av.FreeVars, bv.FreeVars)
	default:
		return 0
	}
}

func compareTermSlice(a, b []Term) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

func compareMap(a, b Map) int {
	if len(a.Pairs) != len(b.Pairs) {
		if len(a.Pairs) < len(b.Pairs) {
			return -1
		}

		return 1
	}
	for i := range a.Pairs {
		if c := Compare(a.Pairs[i].Key, b.Pairs[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.Pairs[i].Value, b.Pairs[i].Value); c != 0 {
			return c
		}
	}

	return 0
}

func compareList(a, b List) int {
	if c := compareTermSlice(a.Elements, b.Elements); c != 0 {
		return c
	}

	return Compare(a.Tail, b.Tail)
}

func compareBitstring(a, b Bitstring) int {
	if c := bytes.Compare(a.Bytes, b.Bytes); c != 0 {
		return c
	}

	return compareInt(int(a.Bits), int(b.Bits))
}
