package token

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// escapes maps every ASCII byte that must be escaped inside an EDN string
// to its escape sequence. It is filled once by init and only read after.
var escapes [utf8.RuneSelf]string

func init() {
	for i := range 0x20 {
		escapes[i] = fmt.Sprintf(`\u%04x`, i)
	}
	escapes['\\'] = `\\`
	escapes['"'] = `\"`
	escapes['\b'] = `\b`
	escapes['\f'] = `\f`
	escapes['\n'] = `\n`
	escapes['\r'] = `\r`
	escapes['\t'] = `\t`
}

// Quote returns v as a double quoted EDN string literal.
//
// Backslash, double quote and the control characters U+0000 through
// U+001F are escaped. All other characters pass through unchanged.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		// bytes of multi-byte sequences are all >= utf8.RuneSelf
		if c >= utf8.RuneSelf || escapes[c] == "" {
			continue
		}
		d = append(d, v[start:i]...)
		d = append(d, escapes[c]...)
		start = i + 1
	}
	d = append(d, v[start:]...)
	return append(d, '"')
}

// Unquote returns the text of a double quoted EDN string literal.
func Unquote(v string) (string, error) {
	n := len(v)
	if n < 2 || v[0] != '"' || v[n-1] != '"' {
		return "", fmt.Errorf("%w: %q", ErrUnterminated, v)
	}
	body := v[1 : n-1]
	if !strings.ContainsRune(body, '\\') {
		if strings.ContainsRune(body, '"') {
			return "", fmt.Errorf("%w: unescaped quote in %q", ErrBadEscape, v)
		}
		if !utf8.ValidString(body) {
			return "", ErrBadUTF8
		}
		return body, nil
	}
	b := &strings.Builder{}
	b.Grow(len(body))
	for i := 0; i < len(body); {
		r, sz := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError && sz <= 1 {
			return "", ErrBadUTF8
		}
		i += sz
		switch r {
		case '"':
			return "", fmt.Errorf("%w: unescaped quote in %q", ErrBadEscape, v)
		case '\\':
		default:
			b.WriteRune(r)
			continue
		}
		if i >= len(body) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		c := body[i]
		i++
		switch c {
		case '"', '\\', '/':
			b.WriteByte(c)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			u, err := hex4(body, i)
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(u) && i+6 <= len(body) && body[i] == '\\' && body[i+1] == 'u' {
				if lo, err := hex4(body, i+2); err == nil {
					if pair := utf16.DecodeRune(u, lo); pair != utf8.RuneError {
						b.WriteRune(pair)
						i += 6
						continue
					}
				}
			}
			b.WriteRune(u)
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, c)
		}
	}
	return b.String(), nil
}

func hex4(s string, i int) (rune, error) {
	if i+4 > len(s) {
		return 0, fmt.Errorf("%w: short \\u escape", ErrBadUnicode)
	}
	var r rune
	for _, c := range []byte(s[i : i+4]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: \\u%s", ErrBadUnicode, s[i:i+4])
		}
	}
	return r, nil
}
