// Package value provides the value model for EDN documents.
//
// # Overview
//
// Every EDN document is represented as a tree of Value. Value is a sealed
// interface: the set of variants is closed and each variant is a plain Go
// type in this package, so a type switch over Value is exhaustive.
//
// # Variants
//
//   - Nil, Bool
//   - Int (arbitrary precision), Float, Decimal (exact, M suffix), Rational
//   - String, Bytes (decoded to text when encoded)
//   - Symbol, Keyword
//   - Vector, List, Set, Map
//   - Inst (timestamp), Date (date only), UUID
//   - Tagged (#tag elem)
//
// # Creating Values
//
// Variants can be built directly or converted from native Go values:
//
//	v := value.Vector{value.NewInt(1), value.String("two"), value.MustKeyword("three")}
//	m := value.Map{{Key: value.MustKeyword("id"), Val: value.UUID(uuid.New())}}
//	n, err := value.From(map[string]any{"a": []any{1, 2.5, nil}})
//
// Symbols and keywords are validated by NewSymbol and NewKeyword, so a
// Symbol or Keyword built through them always renders as legal EDN.
//
// # Ordering and Equality
//
// Compare defines the ordering used to sort sets deterministically and
// fails with ErrIncomparable for values without a defined order. Equal
// implements EDN equality.
//
// # Related Packages
//
//   - github.com/signadot/edn-format/go-edn/encode - Encode values to EDN text
//   - github.com/signadot/edn-format/go-edn/parse - Parse EDN text to values
package value
