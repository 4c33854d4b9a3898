package value

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Compare returns -1, 0 or +1 ordering a before, equal to or after b.
//
// Numbers compare by numeric value across Int, Float, Decimal and
// Rational. Vectors and lists compare element-wise. Strings, bytes,
// symbols, keywords, booleans, instants, dates and UUIDs compare within
// their own kind. Any other pairing returns ErrIncomparable.
func Compare(a, b Value) (int, error) {
	a, b = orNil(a), orNil(b)
	ka, kb := a.Kind(), b.Kind()
	if ka.IsNumber() && kb.IsNumber() {
		return compareNumbers(a, b), nil
	}
	if isSequential(ka) && isSequential(kb) {
		return compareSeqs(seqOf(a), seqOf(b))
	}
	if ka != kb {
		return 0, incomparable(a, b)
	}
	switch x := a.(type) {
	case Nil:
		return 0, nil
	case Bool:
		y := b.(Bool)
		switch {
		case x == y:
			return 0, nil
		case !bool(x):
			return -1, nil
		default:
			return 1, nil
		}
	case String:
		return strings.Compare(string(x), string(b.(String))), nil
	case Bytes:
		return bytes.Compare(x, b.(Bytes)), nil
	case Symbol:
		y := b.(Symbol)
		return cmp.Or(strings.Compare(x.Namespace, y.Namespace), strings.Compare(x.Name, y.Name)), nil
	case Keyword:
		y := b.(Keyword)
		return cmp.Or(strings.Compare(x.Namespace, y.Namespace), strings.Compare(x.Name, y.Name)), nil
	case Inst:
		return x.Time.Compare(b.(Inst).Time), nil
	case Date:
		y := b.(Date)
		return cmp.Or(cmp.Compare(x.Year, y.Year), cmp.Compare(x.Month, y.Month), cmp.Compare(x.Day, y.Day)), nil
	case UUID:
		y := b.(UUID)
		return bytes.Compare(x[:], y[:]), nil
	}
	return 0, incomparable(a, b)
}

func incomparable(a, b Value) error {
	return fmt.Errorf("%w: %s and %s", ErrIncomparable, a.Kind(), b.Kind())
}

func orNil(v Value) Value {
	if v == nil {
		return Nil{}
	}
	return v
}

func isSequential(k Kind) bool {
	return k == VectorKind || k == ListKind
}

func seqOf(v Value) []Value {
	switch x := v.(type) {
	case Vector:
		return x
	case List:
		return x
	}
	return nil
}

func compareSeqs(a, b []Value) (int, error) {
	n := min(len(a), len(b))
	for i := range n {
		c, err := Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmp.Compare(len(a), len(b)), nil
}

func compareNumbers(a, b Value) int {
	fa, aIsFloat := a.(Float)
	fb, bIsFloat := b.(Float)
	if aIsFloat && bIsFloat {
		return cmp.Compare(float64(fa), float64(fb))
	}
	if (aIsFloat && !isFinite(float64(fa))) || (bIsFloat && !isFinite(float64(fb))) {
		return cmp.Compare(toFloat(a), toFloat(b))
	}
	return toRat(a).Cmp(toRat(b))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toFloat(v Value) float64 {
	if f, ok := v.(Float); ok {
		return float64(f)
	}
	f, _ := toRat(v).Float64()
	return f
}

// toRat converts a finite number to an exact ratio.
func toRat(v Value) *big.Rat {
	switch x := v.(type) {
	case Int:
		if x.Int == nil {
			return new(big.Rat)
		}
		return new(big.Rat).SetInt(x.Int)
	case Float:
		r := new(big.Rat)
		if r.SetFloat64(float64(x)) == nil {
			return new(big.Rat)
		}
		return r
	case Rational:
		if x.Rat == nil {
			return new(big.Rat)
		}
		return x.Rat
	case Decimal:
		if x.Decimal == nil {
			return new(big.Rat)
		}
		r := new(big.Rat).SetInt(x.Coeff.MathBigInt())
		if x.Negative {
			r.Neg(r)
		}
		if x.Exponent == 0 {
			return r
		}
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(x.Exponent))), nil)
		if x.Exponent > 0 {
			return r.Mul(r, new(big.Rat).SetInt(scale))
		}
		return r.Quo(r, new(big.Rat).SetInt(scale))
	}
	return new(big.Rat)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
