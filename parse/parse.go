package parse

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/signadot/edn-format/go-edn/debug"
	"github.com/signadot/edn-format/go-edn/token"
	"github.com/signadot/edn-format/go-edn/value"
)

// Parse reads exactly one EDN form from d.
func Parse(d []byte, opts ...ParseOption) (value.Value, error) {
	vs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(vs) {
	case 0:
		return nil, fmt.Errorf("%w: no form", ErrEOF)
	case 1:
		return vs[0], nil
	}
	return nil, fmt.Errorf("%w: expected one form, got %d", ErrParse, len(vs))
}

// ParseAll reads every top level form in d.
func ParseAll(d []byte, opts ...ParseOption) ([]value.Value, error) {
	pOpts := &parseOpts{maxDepth: value.DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %s\n", toks[i].String())
		}
	}
	var res []value.Value
	i := 0
	for {
		if err := skipDiscards(toks, &i, 0, pOpts); err != nil {
			return nil, err
		}
		if i >= len(toks) {
			break
		}
		v, err := form(toks, &i, 0, pOpts)
		if err != nil {
			return nil, err
		}
		if debug.Parse() {
			debug.Logf("parsed %s\n", v)
		}
		res = append(res, v)
	}
	return res, nil
}

// skipDiscards drops each #_ and the form following it.
func skipDiscards(toks []token.Token, pi *int, depth int, opts *parseOpts) error {
	for *pi < len(toks) && toks[*pi].Type == token.TDiscard {
		*pi++
		if _, err := form(toks, pi, depth, opts); err != nil {
			return err
		}
	}
	return nil
}

func form(toks []token.Token, pi *int, depth int, opts *parseOpts) (value.Value, error) {
	if err := skipDiscards(toks, pi, depth, opts); err != nil {
		return nil, err
	}
	if *pi >= len(toks) {
		return nil, ErrEOF
	}
	t := &toks[*pi]
	if depth > opts.maxDepth {
		return nil, errAt(t, fmt.Errorf("%w: %w", ErrParse, value.ErrMaxDepth), "depth %d", depth)
	}
	*pi++
	switch t.Type {
	case token.TLParen:
		elems, err := seq(toks, pi, t, depth, opts)
		if err != nil {
			return nil, err
		}
		return value.List(elems), nil
	case token.TLSquare:
		elems, err := seq(toks, pi, t, depth, opts)
		if err != nil {
			return nil, err
		}
		return value.Vector(elems), nil
	case token.TSetOpen:
		elems, err := seq(toks, pi, t, depth, opts)
		if err != nil {
			return nil, err
		}
		return set(t, elems)
	case token.TLCurl:
		elems, err := seq(toks, pi, t, depth, opts)
		if err != nil {
			return nil, err
		}
		return mapping(t, elems)
	case token.TTag:
		return tagged(toks, pi, t, depth, opts)
	case token.TSymbolic:
		return symbolic(t)
	case token.TString:
		s, err := token.Unquote(string(t.Bytes))
		if err != nil {
			return nil, errAt(t, ErrParse, "%v", err)
		}
		return value.String(s), nil
	case token.TNumber:
		return number(t)
	case token.TSymbol:
		return symbol(t)
	case token.TKeyword:
		k, err := value.NewKeyword(string(t.Bytes[1:]))
		if err != nil {
			return nil, errAt(t, ErrParse, "%v", err)
		}
		return k, nil
	case token.TChar:
		return nil, errAt(t, ErrParse, "character literal %s is not supported", t.Bytes)
	}
	return nil, errAt(t, ErrParse, "unexpected %s", t.Bytes)
}

// seq reads forms up to the closer matching open, which has already been
// consumed.
func seq(toks []token.Token, pi *int, open *token.Token, depth int, opts *parseOpts) ([]value.Value, error) {
	closer := open.Type.Closer()
	res := []value.Value{}
	for {
		if err := skipDiscards(toks, pi, depth+1, opts); err != nil {
			return nil, err
		}
		if *pi >= len(toks) {
			return nil, errAt(open, ErrEOF, "unclosed %s", open.Bytes)
		}
		if toks[*pi].Type == closer {
			*pi++
			return res, nil
		}
		v, err := form(toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
}

func set(open *token.Token, elems []value.Value) (value.Value, error) {
	res := make(value.Set, 0, len(elems))
	for _, e := range elems {
		if res.Contains(e) {
			return nil, errAt(open, ErrDuplicate, "set element")
		}
		res = append(res, e)
	}
	return res, nil
}

func mapping(open *token.Token, elems []value.Value) (value.Value, error) {
	if len(elems)%2 != 0 {
		return nil, errAt(open, ErrParse, "map literal has %d forms", len(elems))
	}
	res := make(value.Map, 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		if _, dup := res.Get(elems[i]); dup {
			return nil, errAt(open, ErrDuplicate, "map key")
		}
		res = append(res, value.Entry{Key: elems[i], Val: elems[i+1]})
	}
	return res, nil
}

func symbol(t *token.Token) (value.Value, error) {
	switch s := string(t.Bytes); s {
	case "nil":
		return value.Nil{}, nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	default:
		sym, err := value.NewSymbol(s)
		if err != nil {
			return nil, errAt(t, ErrParse, "%v", err)
		}
		return sym, nil
	}
}

func symbolic(t *token.Token) (value.Value, error) {
	switch string(t.Bytes) {
	case "##NaN":
		return value.Float(math.NaN()), nil
	case "##Inf":
		return value.Float(math.Inf(1)), nil
	case "##-Inf":
		return value.Float(math.Inf(-1)), nil
	}
	return nil, errAt(t, ErrParse, "unknown symbolic value %s", t.Bytes)
}

func tagged(toks []token.Token, pi *int, t *token.Token, depth int, opts *parseOpts) (value.Value, error) {
	tag := string(t.Bytes[1:])
	elem, err := form(toks, pi, depth+1, opts)
	if err != nil {
		return nil, err
	}
	if fn, ok := opts.tags[tag]; ok {
		v, err := fn(elem)
		if err != nil {
			return nil, errAt(t, ErrParse, "#%s: %v", tag, err)
		}
		return v, nil
	}
	switch tag {
	case "inst":
		return inst(t, elem)
	case "uuid":
		s, ok := elem.(value.String)
		if !ok {
			return nil, errAt(t, ErrParse, "#uuid requires a string")
		}
		u, err := uuid.Parse(string(s))
		if err != nil {
			return nil, errAt(t, ErrParse, "#uuid: %v", err)
		}
		return value.UUID(u), nil
	}
	sym, err := value.NewTag(tag)
	if err != nil {
		return nil, errAt(t, ErrParse, "%v", err)
	}
	return value.Tagged{Tag: sym, Elem: elem}, nil
}

// inst reads RFC 3339 timestamps into Inst and bare dates into Date.
func inst(t *token.Token, elem value.Value) (value.Value, error) {
	s, ok := elem.(value.String)
	if !ok {
		return nil, errAt(t, ErrParse, "#inst requires a string")
	}
	if len(s) == len(time.DateOnly) {
		d, err := time.Parse(time.DateOnly, string(s))
		if err != nil {
			return nil, errAt(t, ErrParse, "#inst: %v", err)
		}
		return value.DateOf(d), nil
	}
	ts, err := time.Parse(time.RFC3339Nano, string(s))
	if err != nil {
		return nil, errAt(t, ErrParse, "#inst: %v", err)
	}
	return value.NewInst(ts), nil
}
