package edn

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/signadot/edn-format/go-edn/value"
)

// FromJSON reads a JSON document into a value. Object member order is
// kept and numbers keep their precision: integers become value.Int and
// other numbers value.Float.
func FromJSON(d []byte) (value.Value, error) {
	if !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid document", ErrJSON)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := jsonValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrJSON)
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, depth int) (value.Value, error) {
	if depth > value.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: %w", ErrJSON, value.ErrMaxDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '[':
			res := value.Vector{}
			for dec.More() {
				v, err := jsonValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			return res, closeDelim(dec)
		case '{':
			res := value.Map{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v", ErrJSON, kt)
				}
				v, err := jsonValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				res = append(res, value.Entry{Key: value.String(k), Val: v})
			}
			return res, closeDelim(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %v", ErrJSON, x)
	case nil:
		return value.Nil{}, nil
	case bool:
		return value.Bool(x), nil
	case string:
		return value.String(x), nil
	case json.Number:
		v, err := value.From(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}

func closeDelim(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return nil
}
