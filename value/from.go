package value

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// DefaultMaxDepth bounds nesting for conversion and encoding. Cyclic
// structures hit it instead of recursing forever.
const DefaultMaxDepth = 10000

// From converts a native Go value to a Value.
//
// Values already in this package are returned as is. Otherwise the
// conversion is:
//
//   - nil, nil pointers and nil interfaces: Nil
//   - bool: Bool
//   - signed and unsigned integers, *big.Int: Int
//   - float32, float64: Float
//   - *apd.Decimal: Decimal
//   - *big.Rat: Rational
//   - json.Number: Int when integral, otherwise Float
//   - []byte: Bytes
//   - string: String
//   - time.Time: Inst
//   - uuid.UUID: UUID
//   - arrays: List (fixed arity)
//   - slices: Vector
//   - map[K]struct{}: Set
//   - other maps: Map, in Go map iteration order
//
// Anything else results in an *UnsupportedTypeError.
func From(v any) (Value, error) {
	return FromDepth(v, DefaultMaxDepth)
}

// FromDepth is From with an explicit nesting limit.
func FromDepth(v any, maxDepth int) (Value, error) {
	c := &converter{maxDepth: maxDepth}
	return c.from(v, 0)
}

type converter struct {
	maxDepth int
}

var (
	bytesType = reflect.TypeOf([]byte(nil))
	emptyType = reflect.TypeOf(struct{}{})
)

func (c *converter) from(v any, depth int) (Value, error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrMaxDepth, c.maxDepth)
	}
	switch x := v.(type) {
	case nil:
		return Nil{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint:
		return Int{new(big.Int).SetUint64(uint64(x))}, nil
	case uint8:
		return Int{new(big.Int).SetUint64(uint64(x))}, nil
	case uint16:
		return Int{new(big.Int).SetUint64(uint64(x))}, nil
	case uint32:
		return Int{new(big.Int).SetUint64(uint64(x))}, nil
	case uint64:
		return Int{new(big.Int).SetUint64(x)}, nil
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case *big.Int:
		if x == nil {
			return Nil{}, nil
		}
		return Int{x}, nil
	case *apd.Decimal:
		if x == nil {
			return Nil{}, nil
		}
		return Decimal{x}, nil
	case *big.Rat:
		if x == nil {
			return Nil{}, nil
		}
		return Rational{x}, nil
	case json.Number:
		return fromNumber(x)
	case time.Duration:
		return nil, Unsupported(v)
	case []byte:
		return Bytes(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return Inst{x}, nil
	case uuid.UUID:
		return UUID(x), nil
	case []any:
		res := make(Vector, len(x))
		for i, e := range x {
			ev, err := c.from(e, depth+1)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	case map[string]any:
		res := make(Map, 0, len(x))
		for k, e := range x {
			ev, err := c.from(e, depth+1)
			if err != nil {
				return nil, err
			}
			res = append(res, Entry{Key: String(k), Val: ev})
		}
		return res, nil
	}
	return c.fromReflect(v, reflect.ValueOf(v), depth)
}

func (c *converter) fromReflect(orig any, rv reflect.Value, depth int) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Nil{}, nil
		}
		return c.from(rv.Elem().Interface(), depth+1)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int{new(big.Int).SetUint64(rv.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Nil{}, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Convert(bytesType).Bytes()), nil
		}
		vs, err := c.elems(rv, depth)
		if err != nil {
			return nil, err
		}
		return Vector(vs), nil
	case reflect.Array:
		vs, err := c.elems(rv, depth)
		if err != nil {
			return nil, err
		}
		return List(vs), nil
	case reflect.Map:
		if rv.IsNil() {
			return Nil{}, nil
		}
		if rv.Type().Elem() == emptyType {
			res := make(Set, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				kv, err := c.from(iter.Key().Interface(), depth+1)
				if err != nil {
					return nil, err
				}
				res = append(res, kv)
			}
			return res, nil
		}
		res := make(Map, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kv, err := c.from(iter.Key().Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			vv, err := c.from(iter.Value().Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			res = append(res, Entry{Key: kv, Val: vv})
		}
		return res, nil
	}
	return nil, Unsupported(orig)
}

func (c *converter) elems(rv reflect.Value, depth int) ([]Value, error) {
	n := rv.Len()
	res := make([]Value, n)
	for i := range n {
		ev, err := c.from(rv.Index(i).Interface(), depth+1)
		if err != nil {
			return nil, err
		}
		res[i] = ev
	}
	return res, nil
}

func fromNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if ok {
			return Int{i}, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q: %w", ErrInvalid, s, err)
	}
	return Float(f), nil
}
