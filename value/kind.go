package value

import "fmt"

type Kind int

const (
	NilKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	DecimalKind
	RationalKind
	StringKind
	BytesKind
	SymbolKind
	KeywordKind
	VectorKind
	ListKind
	SetKind
	MapKind
	InstKind
	DateKind
	UUIDKind
	TaggedKind
)

var kindNames = map[Kind]string{
	NilKind:      "Nil",
	BoolKind:     "Bool",
	IntKind:      "Int",
	FloatKind:    "Float",
	DecimalKind:  "Decimal",
	RationalKind: "Rational",
	StringKind:   "String",
	BytesKind:    "Bytes",
	SymbolKind:   "Symbol",
	KeywordKind:  "Keyword",
	VectorKind:   "Vector",
	ListKind:     "List",
	SetKind:      "Set",
	MapKind:      "Map",
	InstKind:     "Inst",
	DateKind:     "Date",
	UUIDKind:     "UUID",
	TaggedKind:   "Tagged",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NilKind,
		BoolKind,
		IntKind,
		FloatKind,
		DecimalKind,
		RationalKind,
		StringKind,
		BytesKind,
		SymbolKind,
		KeywordKind,
		VectorKind,
		ListKind,
		SetKind,
		MapKind,
		InstKind,
		DateKind,
		UUIDKind,
		TaggedKind,
	}
}

// IsNumber reports whether values of kind k take part in numeric comparison.
func (k Kind) IsNumber() bool {
	switch k {
	case IntKind, FloatKind, DecimalKind, RationalKind:
		return true
	default:
		return false
	}
}
