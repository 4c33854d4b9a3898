package parse

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/edn-format/go-edn/token"
	"github.com/signadot/edn-format/go-edn/value"
)

// number reads integers (with optional N), floats, decimals (M) and
// ratios.
func number(t *token.Token) (value.Value, error) {
	s := string(t.Bytes)
	switch {
	case strings.HasSuffix(s, "M"):
		body := strings.TrimPrefix(s[:len(s)-1], "+")
		if !isFloatText(body) {
			return nil, errAt(t, ErrBadNumber, "%q", s)
		}
		d, err := value.NewDecimal(body)
		if err != nil {
			return nil, errAt(t, ErrBadNumber, "%v", err)
		}
		return d, nil
	case strings.HasSuffix(s, "N"):
		return integer(t, s[:len(s)-1])
	case strings.Contains(s, "/"):
		ns, ds, _ := strings.Cut(s, "/")
		num, ok := bigInt(ns)
		if !ok {
			return nil, errAt(t, ErrBadNumber, "%q", s)
		}
		den, ok := bigInt(ds)
		if !ok || den.Sign() <= 0 || ds[0] == '+' {
			return nil, errAt(t, ErrBadNumber, "%q", s)
		}
		return value.Rational{Rat: new(big.Rat).SetFrac(num, den)}, nil
	case strings.ContainsAny(s, ".eE"):
		if !isFloatText(s) {
			return nil, errAt(t, ErrBadNumber, "%q", s)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errAt(t, ErrBadNumber, "%q: %v", s, err)
		}
		return value.Float(f), nil
	}
	return integer(t, s)
}

func integer(t *token.Token, s string) (value.Value, error) {
	i, ok := bigInt(s)
	if !ok {
		return nil, errAt(t, ErrBadNumber, "%q", t.Bytes)
	}
	return value.Int{Int: i}, nil
}

func bigInt(s string) (*big.Int, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return nil, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

// isFloatText reports whether s is digits with an optional sign,
// fraction and exponent.
func isFloatText(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start || (i-start > 1 && s[start] == '0') {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == exp {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
