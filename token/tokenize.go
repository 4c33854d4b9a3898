package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits an EDN document into tokens. Whitespace, commas and
// ';' comments are dropped.
func Tokenize(d []byte) ([]Token, error) {
	tz := &tokenizer{d: d, line: 1, col: 1}
	var res []Token
	for {
		tz.skipSpace()
		if tz.i >= len(tz.d) {
			return res, nil
		}
		tok, err := tz.next()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
}

type tokenizer struct {
	d         []byte
	i         int
	line, col int
}

func (tz *tokenizer) pos() Pos {
	return Pos{Offset: tz.i, Line: tz.line, Col: tz.col}
}

func (tz *tokenizer) advance(n int) {
	for range n {
		if tz.d[tz.i] == '\n' {
			tz.line++
			tz.col = 1
		} else {
			tz.col++
		}
		tz.i++
	}
}

func (tz *tokenizer) skipSpace() {
	for tz.i < len(tz.d) {
		c := tz.d[tz.i]
		switch {
		case c == ';':
			for tz.i < len(tz.d) && tz.d[tz.i] != '\n' {
				tz.advance(1)
			}
		case c == ',' || isASCIISpace(c):
			tz.advance(1)
		case c >= utf8.RuneSelf:
			r, sz := utf8.DecodeRune(tz.d[tz.i:])
			if !unicode.IsSpace(r) {
				return
			}
			tz.advance(sz)
		default:
			return
		}
	}
}

func (tz *tokenizer) emit(tt TokenType, end int) Token {
	tok := Token{Type: tt, Bytes: tz.d[tz.i:end], Pos: tz.pos()}
	tz.advance(end - tz.i)
	return tok
}

func (tz *tokenizer) next() (Token, error) {
	d, i := tz.d, tz.i
	switch c := d[i]; c {
	case '(':
		return tz.emit(TLParen, i+1), nil
	case ')':
		return tz.emit(TRParen, i+1), nil
	case '[':
		return tz.emit(TLSquare, i+1), nil
	case ']':
		return tz.emit(TRSquare, i+1), nil
	case '{':
		return tz.emit(TLCurl, i+1), nil
	case '}':
		return tz.emit(TRCurl, i+1), nil
	case '"':
		end, err := tz.scanString(i)
		if err != nil {
			return Token{}, err
		}
		return tz.emit(TString, end), nil
	case '\\':
		end := tz.scanAtom(i + 1)
		if end == i+1 {
			if end >= len(d) {
				return Token{}, NewTokenizeErr(fmt.Errorf("%w: character at end of input", ErrUnterminated), tz.pos())
			}
			_, sz := utf8.DecodeRune(d[end:])
			end += sz
		}
		return tz.emit(TChar, end), nil
	case '#':
		return tz.dispatch()
	case ':':
		end := tz.scanAtom(i + 1)
		if end == i+1 {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w: lone ':'", ErrUnexpected), tz.pos())
		}
		return tz.emit(TKeyword, end), nil
	default:
		end := tz.scanAtom(i)
		if end == i {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w: %q", ErrUnexpected, c), tz.pos())
		}
		if isDigit(c) || ((c == '+' || c == '-') && i+1 < len(d) && isDigit(d[i+1])) {
			return tz.emit(TNumber, end), nil
		}
		return tz.emit(TSymbol, end), nil
	}
}

func (tz *tokenizer) dispatch() (Token, error) {
	d, i := tz.d, tz.i
	if i+1 >= len(d) {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: '#' at end of input", ErrBadDispatch), tz.pos())
	}
	switch d[i+1] {
	case '{':
		return tz.emit(TSetOpen, i+2), nil
	case '_':
		return tz.emit(TDiscard, i+2), nil
	case '#':
		end := tz.scanAtom(i + 2)
		if end == i+2 {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w: empty '##'", ErrBadDispatch), tz.pos())
		}
		return tz.emit(TSymbolic, end), nil
	}
	r, _ := utf8.DecodeRune(d[i+1:])
	if !unicode.IsLetter(r) {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: '#%c'", ErrBadDispatch, r), tz.pos())
	}
	return tz.emit(TTag, tz.scanAtom(i+1)), nil
}

func (tz *tokenizer) scanString(i int) (int, error) {
	d := tz.d
	esc := false
	for j := i + 1; j < len(d); j++ {
		switch {
		case esc:
			esc = false
		case d[j] == '\\':
			esc = true
		case d[j] == '"':
			return j + 1, nil
		}
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w: string", ErrUnterminated), tz.pos())
}

// scanAtom returns the end of the symbol, keyword, number or tag
// starting at j.
func (tz *tokenizer) scanAtom(j int) int {
	d := tz.d
	for j < len(d) {
		c := d[j]
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRune(d[j:])
			if unicode.IsSpace(r) {
				return j
			}
			j += sz
			continue
		}
		if isDelim(c) {
			return j
		}
		j++
	}
	return j
}

func isDelim(c byte) bool {
	switch c {
	case ',', '(', ')', '[', ']', '{', '}', '"', ';', '\\':
		return true
	}
	return isASCIISpace(c)
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
