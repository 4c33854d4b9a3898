package value

import (
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Value is one of the EDN value variants defined in this package. The set
// is closed: only types in this package implement Value.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Nil    struct{}
	Bool   bool
	Float  float64
	String string
	Bytes  []byte
	Vector []Value
	List   []Value
	Set    []Value
	Map    []Entry
	UUID   uuid.UUID
)

// Int is an arbitrary precision integer. A nil Int is zero.
type Int struct{ *big.Int }

// Decimal is an arbitrary precision decimal, rendered with an M suffix.
type Decimal struct{ *apd.Decimal }

// Rational is a ratio of two integers. big.Rat keeps it reduced.
type Rational struct{ *big.Rat }

// Inst is a calendar timestamp with a time of day.
type Inst struct{ time.Time }

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

type Entry struct {
	Key Value
	Val Value
}

// Tagged is a user defined extension element: #tag elem.
type Tagged struct {
	Tag  Symbol
	Elem Value
}

func (Nil) Kind() Kind      { return NilKind }
func (Bool) Kind() Kind     { return BoolKind }
func (Int) Kind() Kind      { return IntKind }
func (Float) Kind() Kind    { return FloatKind }
func (Decimal) Kind() Kind  { return DecimalKind }
func (Rational) Kind() Kind { return RationalKind }
func (String) Kind() Kind   { return StringKind }
func (Bytes) Kind() Kind    { return BytesKind }
func (Symbol) Kind() Kind   { return SymbolKind }
func (Keyword) Kind() Kind  { return KeywordKind }
func (Vector) Kind() Kind   { return VectorKind }
func (List) Kind() Kind     { return ListKind }
func (Set) Kind() Kind      { return SetKind }
func (Map) Kind() Kind      { return MapKind }
func (Inst) Kind() Kind     { return InstKind }
func (Date) Kind() Kind     { return DateKind }
func (UUID) Kind() Kind     { return UUIDKind }
func (Tagged) Kind() Kind   { return TaggedKind }

func (Nil) isValue()      {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (Decimal) isValue()  {}
func (Rational) isValue() {}
func (String) isValue()   {}
func (Bytes) isValue()    {}
func (Symbol) isValue()   {}
func (Keyword) isValue()  {}
func (Vector) isValue()   {}
func (List) isValue()     {}
func (Set) isValue()      {}
func (Map) isValue()      {}
func (Inst) isValue()     {}
func (Date) isValue()     {}
func (UUID) isValue()     {}
func (Tagged) isValue()   {}

func NewInt(v int64) Int {
	return Int{big.NewInt(v)}
}

func NewBigInt(v *big.Int) Int {
	return Int{v}
}

// NewRational returns num/den in lowest terms.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrInvalid)
	}
	return Rational{big.NewRat(num, den)}, nil
}

// NewDecimal parses s exactly, keeping every digit including trailing zeros.
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: decimal %q: %w", ErrInvalid, s, err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%w: decimal %q is not finite", ErrInvalid, s)
	}
	return Decimal{d}, nil
}

func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func NewInst(t time.Time) Inst {
	return Inst{t}
}

// NewDate returns the date year-month-day. The date must exist in the
// proleptic Gregorian calendar with a four digit year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: date %s", ErrInvalid, d)
	}
	return d, nil
}

func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf drops the time of day from t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether d names a real day with a year in 0000-9999.
func (d Date) Valid() bool {
	if d.Year < 0 || d.Year > 9999 {
		return false
	}
	y, m, day := d.Time().Date()
	return y == d.Year && m == d.Month && day == d.Day
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// NewTagged returns #tag elem. The tag must be a symbol starting with a
// letter.
func NewTagged(tag string, elem Value) (Tagged, error) {
	sym, err := NewTag(tag)
	if err != nil {
		return Tagged{}, err
	}
	return Tagged{Tag: sym, Elem: elem}, nil
}

func MustTagged(tag string, elem Value) Tagged {
	t, err := NewTagged(tag, elem)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns the value stored under a key equal to k.
func (m Map) Get(k Value) (Value, bool) {
	for i := range m {
		if Equal(m[i].Key, k) {
			return m[i].Val, true
		}
	}
	return nil, false
}

// Contains reports whether s has an element equal to v.
func (s Set) Contains(v Value) bool {
	for _, e := range s {
		if Equal(e, v) {
			return true
		}
	}
	return false
}
