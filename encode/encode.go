package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/edn-format/go-edn/token"
	"github.com/signadot/edn-format/go-edn/value"
)

const instLayout = "2006-01-02T15:04:05.000000Z07:00"

type EncState struct {
	cfg   Config
	depth int
	key   bool

	strings *charset

	Color func(value.Kind, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(es)
	}
	if es.cfg.MaxDepth <= 0 {
		es.cfg.MaxDepth = value.DefaultMaxDepth
	}
	return es
}

// Encode writes the EDN text of v to w, encoded with the configured
// output encoding (UTF-8 by default). Nothing is written on error.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	d, err := EncodeBytes(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// EncodeString returns the EDN text of v.
func EncodeString(v any, opts ...EncodeOption) (string, error) {
	es := newState(opts)
	buf, err := es.document(v)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeBytes returns the EDN text of v encoded with the configured
// output encoding, UTF-8 when none is set.
func EncodeBytes(v any, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	out, err := lookupCharset(es.cfg.OutputEncoding)
	if err != nil {
		return nil, err
	}
	buf, err := es.document(v)
	if err != nil {
		return nil, err
	}
	return out.encode(buf.Bytes())
}

func (es *EncState) document(v any) (*bytes.Buffer, error) {
	cs, err := lookupCharset(es.cfg.StringEncoding)
	if err != nil {
		return nil, err
	}
	es.strings = cs
	val, err := value.FromDepth(v, es.cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(val, buf, es); err != nil {
		return nil, err
	}
	return buf, nil
}

func encode(v value.Value, buf *bytes.Buffer, es *EncState) error {
	switch x := v.(type) {
	case nil, value.Nil:
		es.write(buf, value.NilKind, "nil")
	case value.Bool:
		es.write(buf, value.BoolKind, strconv.FormatBool(bool(x)))
	case value.Int:
		if x.Int == nil {
			es.write(buf, value.IntKind, "0")
			return nil
		}
		es.write(buf, value.IntKind, x.String())
	case value.Float:
		es.write(buf, value.FloatKind, formatFloat(float64(x)))
	case value.Decimal:
		s, err := formatDecimal(x)
		if err != nil {
			return err
		}
		es.write(buf, value.DecimalKind, s)
	case value.Symbol:
		if x.Name == "" {
			return fmt.Errorf("%w: empty symbol", ErrEncoding)
		}
		es.write(buf, value.SymbolKind, x.String())
	case value.Keyword:
		if x.Name == "" {
			return fmt.Errorf("%w: empty keyword", ErrEncoding)
		}
		es.write(buf, value.KeywordKind, x.String())
	case value.Bytes:
		s, err := es.strings.decode(x)
		if err != nil {
			return err
		}
		es.write(buf, value.BytesKind, token.Quote(s))
	case value.String:
		if !utf8.ValidString(string(x)) {
			return fmt.Errorf("%w: string is not valid utf-8", ErrEncoding)
		}
		es.write(buf, value.StringKind, token.Quote(string(x)))
	case value.List:
		return encodeSeq(x, value.ListKind, "(", ")", buf, es)
	case value.Vector:
		return encodeSeq(x, value.VectorKind, "[", "]", buf, es)
	case value.Set:
		return encodeSet(x, buf, es)
	case value.Map:
		return encodeMap(x, buf, es)
	case value.Rational:
		if x.Rat == nil {
			es.write(buf, value.RationalKind, "0/1")
			return nil
		}
		es.write(buf, value.RationalKind, x.Num().String()+"/"+x.Denom().String())
	case value.Inst:
		writeTagged(buf, es, value.InstKind, "#inst")
		es.write(buf, value.InstKind, token.Quote(x.UTC().Format(instLayout)))
	case value.Date:
		if !x.Valid() {
			return fmt.Errorf("%w: date %s", ErrEncoding, x)
		}
		writeTagged(buf, es, value.DateKind, "#inst")
		es.write(buf, value.DateKind, token.Quote(x.String()))
	case value.UUID:
		writeTagged(buf, es, value.UUIDKind, "#uuid")
		es.write(buf, value.UUIDKind, token.Quote(x.String()))
	case value.Tagged:
		if _, err := value.NewTag(x.Tag.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		writeTagged(buf, es, value.TaggedKind, "#"+x.Tag.String())
		return nested(x.Elem, buf, es)
	default:
		return value.Unsupported(v)
	}
	return nil
}

// nested encodes a child of a collection or tag, one level deeper.
func nested(v value.Value, buf *bytes.Buffer, es *EncState) error {
	if es.depth >= es.cfg.MaxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepth, es.cfg.MaxDepth)
	}
	es.depth++
	defer func() { es.depth-- }()
	return encode(v, buf, es)
}

func (es *EncState) write(buf *bytes.Buffer, k value.Kind, s string) {
	if es.Color != nil {
		attr := ValueColor
		if es.key {
			attr = KeyColor
		}
		s = es.Color(k, attr, s)
	}
	buf.WriteString(s)
}

func writeDelim(buf *bytes.Buffer, es *EncState, k value.Kind, s string) {
	if es.Color != nil {
		s = es.Color(k, DelimColor, s)
	}
	buf.WriteString(s)
}

func writeTagged(buf *bytes.Buffer, es *EncState, k value.Kind, tag string) {
	if es.Color != nil {
		tag = es.Color(k, TagColor, tag)
	}
	buf.WriteString(tag)
	buf.WriteByte(' ')
}

func encodeSeq(elems []value.Value, k value.Kind, opener, closer string, buf *bytes.Buffer, es *EncState) error {
	writeDelim(buf, es, k, opener)
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if err := nested(e, buf, es); err != nil {
			return err
		}
	}
	writeDelim(buf, es, k, closer)
	return nil
}

func encodeSet(s value.Set, buf *bytes.Buffer, es *EncState) error {
	elems := []value.Value(s)
	if es.cfg.SortSets {
		var err error
		elems, err = sortSet(s)
		if err != nil {
			return err
		}
	}
	return encodeSeq(elems, value.SetKind, "#{", "}", buf, es)
}

func sortSet(s value.Set) ([]value.Value, error) {
	elems := slices.Clone([]value.Value(s))
	var cmpErr error
	slices.SortStableFunc(elems, func(a, b value.Value) int {
		c, err := value.Compare(a, b)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return nil, fmt.Errorf("sorting set: %w", cmpErr)
	}
	return elems, nil
}

type entry struct {
	key     value.Value
	val     value.Value
	sortKey string
}

func encodeMap(m value.Map, buf *bytes.Buffer, es *EncState) error {
	entries := make([]entry, len(m))
	for i := range m {
		k := m[i].Key
		if es.cfg.KeywordKeys {
			kw, err := es.keywordKey(k)
			if err != nil {
				return err
			}
			k = kw
		}
		entries[i] = entry{key: k, val: m[i].Val}
	}
	if es.cfg.SortKeys {
		for i := range entries {
			sk, err := es.keyText(entries[i].key)
			if err != nil {
				return err
			}
			entries[i].sortKey = sk
		}
		slices.SortStableFunc(entries, func(a, b entry) int {
			return strings.Compare(a.sortKey, b.sortKey)
		})
	}
	writeDelim(buf, es, value.MapKind, "{")
	for i := range entries {
		if i > 0 {
			buf.WriteByte(' ')
		}
		es.key = true
		err := nested(entries[i].key, buf, es)
		es.key = false
		if err != nil {
			return err
		}
		buf.WriteByte(' ')
		if err := nested(entries[i].val, buf, es); err != nil {
			return err
		}
	}
	writeDelim(buf, es, value.MapKind, "}")
	return nil
}

// keywordKey coerces String and Bytes keys to keywords.
func (es *EncState) keywordKey(k value.Value) (value.Value, error) {
	var s string
	switch x := k.(type) {
	case value.String:
		s = string(x)
	case value.Bytes:
		var err error
		s, err = es.strings.decode(x)
		if err != nil {
			return nil, err
		}
	default:
		return k, nil
	}
	kw, err := value.NewKeyword(s)
	if err != nil {
		return nil, fmt.Errorf("%w: map key %q as keyword: %w", ErrEncoding, s, err)
	}
	return kw, nil
}

// keyText returns the text a map key sorts by: the decoded text of
// String and Bytes keys, the uncolored EDN rendering of anything else.
func (es *EncState) keyText(k value.Value) (string, error) {
	switch x := k.(type) {
	case value.String:
		return string(x), nil
	case value.Bytes:
		return es.strings.decode(x)
	}
	if es.depth+1 > es.cfg.MaxDepth {
		return "", fmt.Errorf("%w: %d", ErrMaxDepth, es.cfg.MaxDepth)
	}
	sub := &EncState{cfg: es.cfg, depth: es.depth + 1, strings: es.strings}
	buf := bytes.NewBuffer(nil)
	if err := encode(k, buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatFloat returns the shortest text that reads back as f. The text
// always has a '.' or an exponent so that it reads as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "##NaN"
	case math.IsInf(f, 1):
		return "##Inf"
	case math.IsInf(f, -1):
		return "##-Inf"
	}
	var s string
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'e', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatDecimal(d value.Decimal) (string, error) {
	if d.Decimal == nil {
		return "0M", nil
	}
	if d.Form != apd.Finite {
		return "", fmt.Errorf("%w: decimal %s is not finite", ErrEncoding, d.Text('G'))
	}
	return d.Text('G') + "M", nil
}
