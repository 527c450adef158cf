package term

import (
	"math"
	"math/big"

	"github.com/etfgo/letf/errs"
)

// FixInteger is a fixed 32-bit signed integer (SMALL_INTEGER_EXT/INTEGER_EXT).
type FixInteger int32

func (FixInteger) Kind() Kind { return KindNumber }
func (FixInteger) isTerm()    {}

// BigInt is an arbitrary-precision signed integer (SMALL_BIG_EXT/LARGE_BIG_EXT).
// math/big.Int already carries its own sign, matching the wire format's
// separate sign byte plus little-endian magnitude exactly.
type BigInt struct {
	*big.Int
}

func NewBigInt(v *big.Int) BigInt { return BigInt{Int: v} }

func (BigInt) Kind() Kind { return KindNumber }
func (BigInt) isTerm()    {}

// Float is a finite 64-bit float (FLOAT_EXT/NEW_FLOAT_EXT). NaN and
// Infinity are never admissible: construction fails with NonFiniteFloatError.
type Float float64

// NewFloat validates f is finite before admitting it as a Term, per §3.1:
// "NaN and infinity are never admissible Float values (construction fails)."
func NewFloat(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &errs.NonFiniteFloatError{Source: "NewFloat"}
	}

	return Float(f), nil
}

func (Float) Kind() Kind { return KindNumber }
func (Float) isTerm()    {}

// numberRank orders same-Kind Number values of different concrete numeric
// subtypes that are numerically equal; comparison otherwise follows the
// natural numeric order. The wire format and §3.1 do not mandate a specific
// cross-subtype tie-break (e.g. 1 vs 1.0), so ties fall back to this rank
// to keep the ordering total and deterministic.
func numberRank(t Term) int {
	switch t.(type) {
	case FixInteger:
		return 0
	case BigInt:
		return 1
	case Float:
		return 2
	default:
		return 3
	}
}

// numberFloat widens any Number variant to a float64 for comparison. This
// loses precision for BigInt magnitudes beyond 2^53 but is only used to
// order distinct numeric subtypes relative to each other, not for codec
// round-tripping.
func numberFloat(t Term) float64 {
	switch v := t.(type) {
	case FixInteger:
		return float64(v)
	case BigInt:
		f := new(big.Float).SetInt(v.Int)
		out, _ := f.Float64()

		return out
	case Float:
		return float64(v)
	default:
		return 0
	}
}

func compareNumber(a, b Term) int {
	// Same concrete subtype: compare exactly, no float round-trip.
	switch av := a.(type) {
	case FixInteger:
		if bv, ok := b.(FixInteger); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case BigInt:
		if bv, ok := b.(BigInt); ok {
			return av.Cmp(bv.Int)
		}
	case Float:
		if bv, ok := b.(Float); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}

	fa, fb := numberFloat(a), numberFloat(b)
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}

	return compareInt(numberRank(a), numberRank(b))
}
