package encode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// charset is a resolved character encoding. A nil enc is UTF-8.
type charset struct {
	name string
	enc  encoding.Encoding
}

// lookupCharset resolves IANA names and aliases, then WHATWG labels.
func lookupCharset(name string) (*charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return &charset{name: "utf-8"}, nil
	}
	if e, err := ianaindex.IANA.Encoding(name); err == nil && e != nil {
		return &charset{name: name, enc: e}, nil
	}
	if e, err := htmlindex.Get(name); err == nil && e != nil {
		return &charset{name: name, enc: e}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func (c *charset) decode(d []byte) (string, error) {
	if c.enc == nil {
		if !utf8.Valid(d) {
			return "", fmt.Errorf("%w: bytes are not valid utf-8", ErrEncoding)
		}
		return string(d), nil
	}
	res, err := c.enc.NewDecoder().Bytes(d)
	if err != nil {
		return "", fmt.Errorf("%w: decoding %s: %w", ErrEncoding, c.name, err)
	}
	return string(res), nil
}

func (c *charset) encode(d []byte) ([]byte, error) {
	if c.enc == nil {
		return d, nil
	}
	res, err := c.enc.NewEncoder().Bytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %w", ErrEncoding, c.name, err)
	}
	return res, nil
}

// DecodeString decodes d from the named character encoding.
func DecodeString(name string, d []byte) (string, error) {
	cs, err := lookupCharset(name)
	if err != nil {
		return "", err
	}
	return cs.decode(d)
}
