// Package edn encodes Go values as EDN (Extensible Data Notation) text
// and reads EDN text back.
//
// # Usage
//
//	s, err := edn.Dump(map[string]any{"b": 1, "a": []any{true, nil}},
//	    encode.KeywordKeys(true), encode.SortKeys(true))
//	// s == "{:a [true nil] :b 1}"
//
//	v, err := edn.Load([]byte(s))
//
// FromJSON and FromYAML convert JSON and YAML documents to values, and
// Diff compares two values under EDN equality.
//
// # Related Packages
//
//   - github.com/signadot/edn-format/go-edn/value - Value model
//   - github.com/signadot/edn-format/go-edn/encode - Encoder and its options
//   - github.com/signadot/edn-format/go-edn/parse - Reader
package edn
