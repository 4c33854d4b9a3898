package value

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid         = errors.New("invalid value")
	ErrBadSymbol       = errors.New("bad symbol")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrIncomparable    = errors.New("incomparable values")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// UnsupportedTypeError reports a Go value with no EDN representation.
type UnsupportedTypeError struct {
	Type string
	Repr string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("encountered object of type '%s' for which no known encoding is available: %s", e.Type, e.Repr)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Unsupported builds the error returned for v.
func Unsupported(v any) *UnsupportedTypeError {
	return &UnsupportedTypeError{
		Type: fmt.Sprintf("%T", v),
		Repr: fmt.Sprintf("%#v", v),
	}
}
