package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBadDispatch  = errors.New("bad dispatch")
	ErrUnexpected   = errors.New("unexpected")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func NewTokenizeErr(err error, pos Pos) error {
	return &TokenizeErr{Err: err, Pos: pos}
}
