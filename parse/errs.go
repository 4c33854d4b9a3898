package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/edn-format/go-edn/token"
)

var (
	ErrParse     = errors.New("parse error")
	ErrEOF       = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrDuplicate = fmt.Errorf("%w: duplicate", ErrParse)
	ErrBadNumber = fmt.Errorf("%w: bad number", ErrParse)
)

func errAt(t *token.Token, err error, msg string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", err, t.Pos, fmt.Sprintf(msg, args...))
}
