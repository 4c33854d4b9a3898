package token

import "fmt"

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TSetOpen
	TDiscard
	TTag
	TSymbolic
	TString
	TChar
	TNumber
	TSymbol
	TKeyword
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:   "TLParen",
		TRParen:   "TRParen",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TSetOpen:  "TSetOpen",
		TDiscard:  "TDiscard",
		TTag:      "TTag",
		TSymbolic: "TSymbolic",
		TString:   "TString",
		TChar:     "TChar",
		TNumber:   "TNumber",
		TSymbol:   "TSymbol",
		TKeyword:  "TKeyword",
	}[t]
}

// Closer returns the token type closing a collection opened by t.
func (t TokenType) Closer() TokenType {
	switch t {
	case TLParen:
		return TRParen
	case TLSquare:
		return TRSquare
	case TLCurl, TSetOpen:
		return TRCurl
	}
	panic(fmt.Sprintf("%s does not open a collection", t))
}

type Token struct {
	Type  TokenType
	Bytes []byte
	Pos   Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Bytes, t.Pos)
}
