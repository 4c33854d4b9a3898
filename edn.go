package edn

import (
	"github.com/signadot/edn-format/go-edn/debug"
	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/parse"
	"github.com/signadot/edn-format/go-edn/value"
)

// Dump returns the EDN text of v. v may be a value.Value or any native
// Go value accepted by value.From.
func Dump(v any, opts ...encode.EncodeOption) (string, error) {
	s, err := encode.EncodeString(v, opts...)
	if debug.Encode() {
		debug.Logf("dump %T with %s: %q err=%v\n", v, encode.ConfigFromOpts(opts...), s, err)
	}
	return s, err
}

// DumpBytes returns the EDN text of v encoded with the configured output
// encoding, UTF-8 when none is set.
func DumpBytes(v any, opts ...encode.EncodeOption) ([]byte, error) {
	d, err := encode.EncodeBytes(v, opts...)
	if debug.Encode() {
		debug.Logf("dump bytes %T with %s: %d bytes err=%v\n", v, encode.ConfigFromOpts(opts...), len(d), err)
	}
	return d, err
}

// Load reads a single EDN form.
func Load(d []byte, opts ...parse.ParseOption) (value.Value, error) {
	return parse.Parse(d, opts...)
}

// LoadAll reads every top level EDN form.
func LoadAll(d []byte, opts ...parse.ParseOption) ([]value.Value, error) {
	return parse.ParseAll(d, opts...)
}
