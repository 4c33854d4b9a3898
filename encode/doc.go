// Package encode encodes values to EDN text.
//
// # Usage
//
//	// Encode a value built from the value package
//	v := value.Map{{Key: value.MustKeyword("name"), Val: value.String("alice")}}
//	s, err := encode.EncodeString(v)
//
//	// Encode native Go values, with deterministic ordering
//	s, err := encode.EncodeString(map[string]any{"b": 1, "a": 2},
//	    encode.KeywordKeys(true), encode.SortKeys(true))
//	// s == "{:a 2 :b 1}"
//
//	// Encode to latin-1 bytes
//	d, err := encode.EncodeBytes(v, encode.OutputEncoding("latin1"))
//
// Native values are converted with value.From. A value with no EDN
// representation fails with an *UnsupportedTypeError naming its type.
// Output is built completely before anything is returned or written,
// so a failed call produces no partial output.
//
// # Related Packages
//
//   - github.com/signadot/edn-format/go-edn/value - Value model
//   - github.com/signadot/edn-format/go-edn/parse - Parse EDN text to values
package encode
