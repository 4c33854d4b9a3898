package edn

import (
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/value"
)

func roundTripValues() map[string]value.Value {
	r, _ := value.NewRational(-22, 7)
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	ts := time.Date(2024, 2, 29, 13, 14, 15, 123456000, time.UTC)
	return map[string]value.Value{
		"nil":      value.Nil{},
		"bool":     value.Bool(true),
		"int":      value.NewInt(-17),
		"big int":  value.NewBigInt(huge),
		"float":    value.Float(0.1),
		"tiny":     value.Float(5e-324),
		"huge":     value.Float(1.7976931348623157e308),
		"nan":      value.Float(math.NaN()),
		"inf":      value.Float(math.Inf(-1)),
		"decimal":  value.MustDecimal("-1234.50000"),
		"exp dec":  value.MustDecimal("1E+10"),
		"rational": r,
		"string":   value.String("tab\t nl\n quote\" bs\\ nul\x00 bell\x07 é 世界 🎉"),
		"symbol":   value.MustSymbol("clojure.core//"),
		"keyword":  value.MustKeyword("ns/kw?"),
		"vector":   value.Vector{value.NewInt(1), value.Vector{}, value.List{}},
		"list":     value.List{value.MustSymbol("+"), value.NewInt(1), value.Float(2)},
		"set":      value.Set{value.NewInt(1), value.String("1"), value.MustKeyword("one")},
		"map": value.Map{
			{Key: value.Vector{value.NewInt(1)}, Val: value.Set{}},
			{Key: value.Nil{}, Val: value.Map{}},
			{Key: value.MustKeyword("k"), Val: value.String("v")},
		},
		"inst": value.NewInst(ts),
		"date": value.MustDate(1999, time.December, 31),
		"uuid": value.UUID(uuid.MustParse("de305d54-75b4-431b-adb2-eb6b9e546014")),
		"tagged": value.MustTagged("myapp/Person", value.Map{
			{Key: value.MustKeyword("name"), Val: value.String("Ada")},
		}),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, v := range roundTripValues() {
		t.Run(name, func(t *testing.T) {
			for _, opts := range [][]encode.EncodeOption{
				nil,
				{encode.SortKeys(true)},
				{encode.Pretty(true)},
			} {
				s, err := Dump(v, opts...)
				if err != nil {
					t.Fatalf("Dump: %v", err)
				}
				back, err := Load([]byte(s))
				if err != nil {
					t.Fatalf("Load(%s): %v", s, err)
				}
				if !value.Equal(back, v) {
					t.Errorf("round trip of %s gave %#v, want %#v", s, back, v)
				}
			}
		})
	}
}

func TestRoundTripFloatBits(t *testing.T) {
	for _, f := range []float64{
		0.1, -0.0, math.Copysign(0, -1), 1e16, 1e-7, math.Pi, 1.0 / 3, 9007199254740993,
		math.MaxFloat64, math.SmallestNonzeroFloat64, -2.2250738585072014e-308,
	} {
		s, err := Dump(f)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Load([]byte(s))
		if err != nil {
			t.Fatalf("Load(%s): %v", s, err)
		}
		g, ok := back.(value.Float)
		if !ok {
			t.Fatalf("Load(%s) = %#v, want a Float", s, back)
		}
		if math.Float64bits(float64(g)) != math.Float64bits(f) {
			t.Errorf("%v encoded as %s reads back as %v", f, s, g)
		}
	}
}

func TestRoundTripTagged(t *testing.T) {
	v := value.MustTagged("myapp/Foo", value.NewInt(5))
	s, err := Dump(v)
	if err != nil {
		t.Fatal(err)
	}
	if s != "#myapp/Foo 5" {
		t.Errorf("Dump = %s", s)
	}
	back, err := Load([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(back, v) {
		t.Errorf("Load = %#v", back)
	}
}

func TestReservedTagsAndDates(t *testing.T) {
	for _, tag := range []string{"inst", "uuid"} {
		if _, err := value.NewTagged(tag, value.String("x")); err == nil {
			t.Errorf("NewTagged(%q) should fail", tag)
		}
	}
	if _, err := value.NewDate(2020, time.February, 31); err == nil {
		t.Error("NewDate(2020-02-31) should fail")
	}
	for _, v := range []value.Value{
		value.Tagged{Tag: value.Symbol{Name: "inst"}, Elem: value.NewInt(5)},
		value.Tagged{Tag: value.Symbol{Name: "uuid"}, Elem: value.String("x")},
		value.Date{Year: 2020, Month: time.February, Day: 31},
	} {
		if s, err := Dump(v); err == nil {
			t.Errorf("Dump(%#v) = %s, want error", v, s)
		}
	}
	for _, v := range []value.Value{
		value.MustDate(2020, time.February, 29),
		value.MustTagged("my/inst", value.NewInt(5)),
	} {
		s, err := Dump(v)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Load([]byte(s))
		if err != nil {
			t.Fatalf("Load(%s): %v", s, err)
		}
		if !value.Equal(back, v) {
			t.Errorf("Load(%s) = %#v, want %#v", s, back, v)
		}
	}
}

func TestRoundTripDocument(t *testing.T) {
	in := `{:id #uuid "de305d54-75b4-431b-adb2-eb6b9e546014"
 :at #inst "2020-05-06T07:08:09.100000Z"
 :tags #{:a :b}
 :ratio 3/4
 :price 19.99M
 "nested" [(1 2.0) {nil ##Inf}]
 :ext #my/type {:x 1}}`
	v, err := Load([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Dump(v, encode.SortKeys(true), encode.SortSets(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{:at #inst "2020-05-06T07:08:09.100000Z" :ext #my/type {:x 1} ` +
		`:id #uuid "de305d54-75b4-431b-adb2-eb6b9e546014" :price 19.99M :ratio 3/4 :tags #{:a :b} ` +
		`"nested" [(1 2.0) {nil ##Inf}]}`
	if s != want {
		t.Errorf("got\n%s\nwant\n%s", s, want)
	}
	back, err := Load([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(back, v) {
		t.Errorf("second round trip differs")
	}
}

func TestLoadAll(t *testing.T) {
	vs, err := LoadAll([]byte("1 [2] {:three 3}"))
	if err != nil {
		t.Fatal(err)
	}
	var parts []string
	for _, v := range vs {
		parts = append(parts, encode.MustString(v))
	}
	if got := strings.Join(parts, " "); got != "1 [2] {:three 3}" {
		t.Errorf("got %s", got)
	}
}

func TestDumpBytes(t *testing.T) {
	d, err := DumpBytes([]any{"ü"}, encode.OutputEncoding("ISO-8859-1"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "[\"\xfc\"]" {
		t.Errorf("got %q", d)
	}
}
