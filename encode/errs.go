package encode

import (
	"errors"

	"github.com/signadot/edn-format/go-edn/value"
)

type UnsupportedTypeError = value.UnsupportedTypeError

var (
	ErrEncoding        = errors.New("encoding error")
	ErrUnknownEncoding = errors.New("unknown character encoding")
	ErrUnsupportedType = value.ErrUnsupportedType
	ErrMaxDepth        = value.ErrMaxDepth
	ErrIncomparable    = value.ErrIncomparable
)
