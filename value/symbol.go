package value

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is an identifier, optionally namespaced: ns/name.
type Symbol struct {
	Namespace string
	Name      string
}

// Keyword is a symbolic identifier that evaluates to itself: :ns/name.
type Keyword struct {
	Namespace string
	Name      string
}

func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

func (k Keyword) String() string {
	if k.Namespace == "" {
		return ":" + k.Name
	}
	return ":" + k.Namespace + "/" + k.Name
}

// Symbol returns the keyword's text as a symbol.
func (k Keyword) Symbol() Symbol {
	return Symbol(k)
}

// NewSymbol parses and validates "name" or "ns/name".
func NewSymbol(v string) (Symbol, error) {
	if v == "/" {
		return Symbol{Name: "/"}, nil
	}
	switch v {
	case "nil", "true", "false":
		return Symbol{}, fmt.Errorf("%w: %q is reserved", ErrBadSymbol, v)
	}
	ns, name, err := splitSymbol(v)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Namespace: ns, Name: name}, nil
}

func MustSymbol(v string) Symbol {
	s, err := NewSymbol(v)
	if err != nil {
		panic(err)
	}
	return s
}

// NewKeyword parses and validates keyword text without the leading colon.
func NewKeyword(v string) (Keyword, error) {
	if strings.HasPrefix(v, ":") {
		return Keyword{}, fmt.Errorf("%w: keyword %q has a leading colon", ErrBadSymbol, v)
	}
	if v == "/" {
		return Keyword{}, fmt.Errorf("%w: keyword %q", ErrBadSymbol, v)
	}
	ns, name, err := splitSymbol(v)
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{Namespace: ns, Name: name}, nil
}

func MustKeyword(v string) Keyword {
	k, err := NewKeyword(v)
	if err != nil {
		panic(err)
	}
	return k
}

// NewTag validates a tagged element tag, which must start with a letter.
// The built in tags inst and uuid are reserved for Inst, Date and UUID.
func NewTag(v string) (Symbol, error) {
	sym, err := NewSymbol(v)
	if err != nil {
		return Symbol{}, err
	}
	if sym.Namespace == "" && (sym.Name == "inst" || sym.Name == "uuid") {
		return Symbol{}, fmt.Errorf("%w: tag %q is reserved", ErrBadSymbol, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	if !unicode.IsLetter(r) {
		return Symbol{}, fmt.Errorf("%w: tag %q must start with a letter", ErrBadSymbol, v)
	}
	return sym, nil
}

func splitSymbol(v string) (string, string, error) {
	if v == "" {
		return "", "", fmt.Errorf("%w: empty", ErrBadSymbol)
	}
	ns, name, found := strings.Cut(v, "/")
	if !found {
		if err := checkSymbolPart(v, v); err != nil {
			return "", "", err
		}
		return "", v, nil
	}
	if err := checkSymbolPart(v, ns); err != nil {
		return "", "", err
	}
	// a bare "/" is allowed as the name part: clojure.core//
	if name == "/" {
		return ns, name, nil
	}
	if strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q has more than one '/'", ErrBadSymbol, v)
	}
	if err := checkSymbolPart(v, name); err != nil {
		return "", "", err
	}
	return ns, name, nil
}

func checkSymbolPart(full, part string) error {
	if part == "" {
		return fmt.Errorf("%w: %q has an empty part", ErrBadSymbol, full)
	}
	first, sz := utf8.DecodeRuneInString(part)
	if isDigit(first) || first == ':' || first == '#' {
		return fmt.Errorf("%w: %q cannot start with %q", ErrBadSymbol, full, first)
	}
	if first == '+' || first == '-' || first == '.' {
		if second, _ := utf8.DecodeRuneInString(part[sz:]); isDigit(second) {
			return fmt.Errorf("%w: %q reads as a number", ErrBadSymbol, full)
		}
	}
	for _, r := range part {
		if !isSymbolRune(r) {
			return fmt.Errorf("%w: %q contains %q", ErrBadSymbol, full, r)
		}
	}
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbolRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', '*', '+', '!', '-', '_', '?', '$', '%', '&', '=', '<', '>', ':', '#', '\'':
		return true
	}
	return false
}
