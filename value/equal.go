package value

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are the same EDN value. Vectors and lists
// with equal elements are equal; sets and maps ignore element order.
// Numbers of different kinds are never equal.
func Equal(a, b Value) bool {
	a, b = orNil(a), orNil(b)
	if isSequential(a.Kind()) && isSequential(b.Kind()) {
		return equalSeqs(seqOf(a), seqOf(b))
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Nil:
		return true
	case Bool:
		return x == b.(Bool)
	case Int:
		return toRat(x).Cmp(toRat(b)) == 0
	case Float:
		y := b.(Float)
		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}
		return x == y
	case Decimal:
		return toRat(x).Cmp(toRat(b)) == 0
	case Rational:
		return toRat(x).Cmp(toRat(b)) == 0
	case String:
		return x == b.(String)
	case Bytes:
		return bytes.Equal(x, b.(Bytes))
	case Symbol:
		return x == b.(Symbol)
	case Keyword:
		return x == b.(Keyword)
	case Set:
		y := b.(Set)
		if len(x) != len(y) {
			return false
		}
		for _, e := range x {
			if !y.Contains(e) {
				return false
			}
		}
		return true
	case Map:
		y := b.(Map)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			yv, ok := y.Get(x[i].Key)
			if !ok || !Equal(x[i].Val, yv) {
				return false
			}
		}
		return true
	case Inst:
		return x.Time.Equal(b.(Inst).Time)
	case Date:
		return x == b.(Date)
	case UUID:
		return x == b.(UUID)
	case Tagged:
		y := b.(Tagged)
		return x.Tag == y.Tag && Equal(x.Elem, y.Elem)
	}
	return false
}

func equalSeqs(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
