package encode

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/signadot/edn-format/go-edn/value"
)

func TestEncode(t *testing.T) {
	r64, _ := value.NewRational(6, 4)
	neg, _ := value.NewRational(-1, 3)
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	id := uuid.MustParse("F81D4FAE-7DEC-11D0-A765-00A0C91E6BF6")
	tests := []struct {
		name string
		in   any
		out  string
	}{
		{"nil", nil, "nil"},
		{"Nil", value.Nil{}, "nil"},
		{"true", true, "true"},
		{"false", value.Bool(false), "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"big int", value.NewBigInt(huge), huge.String()},
		{"zero Int", value.Int{}, "0"},
		{"float", 1.5, "1.5"},
		{"integral float", 3.0, "3.0"},
		{"decimal", value.MustDecimal("1.50"), "1.50M"},
		{"rational reduced", r64, "3/2"},
		{"negative rational", neg, "-1/3"},
		{"symbol", value.MustSymbol("my.ns/foo"), "my.ns/foo"},
		{"keyword", value.MustKeyword("a/b"), ":a/b"},
		{"string", "hello", `"hello"`},
		{"escaped string", "a\nb\"c", `"a\nb\"c"`},
		{"empty string", "", `""`},
		{"bytes", []byte("raw"), `"raw"`},
		{"vector", []any{1, "a", nil}, `[1 "a" nil]`},
		{"empty vector", value.Vector{}, "[]"},
		{"list", value.List{value.MustSymbol("f"), value.NewInt(1)}, "(f 1)"},
		{"array", [3]int{1, 2, 3}, "(1 2 3)"},
		{"set", value.Set{value.NewInt(1)}, "#{1}"},
		{"map", value.Map{{Key: value.MustKeyword("a"), Val: value.Vector{}}}, "{:a []}"},
		{"nested", []any{map[string]any{"k": []any{true}}}, `[{"k" [true]}]`},
		{"inst", time.Date(1985, 4, 12, 23, 20, 50, 520000000, time.UTC), `#inst "1985-04-12T23:20:50.520000Z"`},
		{"inst zone", time.Date(2020, 1, 1, 1, 0, 0, 0, time.FixedZone("x", 3600)), `#inst "2020-01-01T00:00:00.000000Z"`},
		{"date", value.MustDate(2020, time.February, 3), `#inst "2020-02-03"`},
		{"uuid", id, `#uuid "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"`},
		{"tagged", value.MustTagged("myapp/Foo", value.NewInt(5)), "#myapp/Foo 5"},
		{"tagged map", value.MustTagged("point", value.Map{{Key: value.MustKeyword("x"), Val: value.NewInt(1)}}), "#point {:x 1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.in)
			if err != nil {
				t.Fatalf("EncodeString(%#v) error: %v", tt.in, err)
			}
			if got != tt.out {
				t.Errorf("EncodeString(%#v) = %s, want %s", tt.in, got, tt.out)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1e-4, "0.0001"},
		{1.5e-7, "1.5e-07"},
		{123456789, "123456789.0"},
		{1e16, "1e+16"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{math.NaN(), "##NaN"},
		{math.Inf(1), "##Inf"},
		{math.Inf(-1), "##-Inf"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.out {
			t.Errorf("formatFloat(%v) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestFloatBits(t *testing.T) {
	for _, f := range []float64{
		0.1, 1.0 / 3, 2.0 / 3, 1e-300, 123.456e200, -9.999999999999999e15,
		math.Pi, math.E, math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Copysign(0, -1), 4503599627370497, 0.30000000000000004,
	} {
		s := formatFloat(f)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Errorf("formatFloat(%v) = %s does not parse: %v", f, s, err)
			continue
		}
		if math.Float64bits(back) != math.Float64bits(f) {
			t.Errorf("formatFloat(%v) = %s reads back as %v", f, s, back)
		}
	}
}

func TestDecimalDigits(t *testing.T) {
	for _, in := range []string{
		"0", "-0", "1.000", "3.14159265358979323846264338327950288",
		"123456789012345678901234567890", "1E+3", "0.000001",
	} {
		got, err := EncodeString(value.MustDecimal(in))
		if err != nil {
			t.Fatal(err)
		}
		if got != in+"M" {
			t.Errorf("decimal %s encoded as %s", in, got)
		}
	}
	got, err := EncodeString(value.Decimal{})
	if err != nil || got != "0M" {
		t.Errorf("zero Decimal = %q, %v", got, err)
	}
}

func TestEscaping(t *testing.T) {
	var b strings.Builder
	for i := range 0x20 {
		b.WriteRune(rune(i))
	}
	b.WriteString(`\"`)
	got, err := EncodeString(b.String())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got)-1; i++ {
		if got[i] < 0x20 {
			t.Fatalf("literal control character %#x in %q", got[i], got)
		}
	}
	if !strings.HasPrefix(got, `"\u0000\u0001`) || !strings.HasSuffix(got, `\\\""`) {
		t.Errorf("unexpected escaping: %s", got)
	}
}

func TestSortKeys(t *testing.T) {
	m := map[string]any{"b": 1, "a": 2, "c": 3}
	for range 10 {
		got, err := EncodeString(m, SortKeys(true))
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"a" 2 "b" 1 "c" 3}`; got != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
	got, err := EncodeString(map[string]any{"b": 1, "a": 2}, SortKeys(true), KeywordKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	if want := "{:a 2 :b 1}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSortKeysMixed(t *testing.T) {
	m := value.Map{
		{Key: value.MustKeyword("b"), Val: value.NewInt(1)},
		{Key: value.String("z"), Val: value.NewInt(2)},
		{Key: value.NewInt(10), Val: value.NewInt(3)},
		{Key: value.MustKeyword("a"), Val: value.NewInt(4)},
	}
	got, err := EncodeString(m, SortKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{10 3 :a 4 :b 1 "z" 2}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSortKeysByText(t *testing.T) {
	m := value.Map{
		{Key: value.String("a!"), Val: value.NewInt(2)},
		{Key: value.String("a"), Val: value.NewInt(1)},
		{Key: value.String("a\tb"), Val: value.NewInt(3)},
		{Key: value.Bytes("aZ"), Val: value.NewInt(4)},
		{Key: value.String(`a"`), Val: value.NewInt(5)},
	}
	got, err := EncodeString(m, SortKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a" 1 "a\tb" 3 "a!" 2 "a\"" 5 "aZ" 4}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted keys (-want +got):\n%s", diff)
	}
}

func TestKeywordKeys(t *testing.T) {
	m := value.Map{
		{Key: value.String("x"), Val: value.NewInt(1)},
		{Key: value.Bytes("ns/y"), Val: value.NewInt(2)},
		{Key: value.NewInt(3), Val: value.NewInt(3)},
	}
	got, err := EncodeString(m, KeywordKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	if want := "{:x 1 :ns/y 2 3 3}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	got, err = EncodeString(m)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"x" 1 "ns/y" 2 3 3}`; got != want {
		t.Errorf("without KeywordKeys got %s, want %s", got, want)
	}
	for _, k := range []string{"not a keyword", "", ":a", "1x"} {
		_, err = EncodeString(map[string]any{k: 1}, KeywordKeys(true))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("key %q: error = %v, want ErrEncoding", k, err)
		}
	}
}

func TestSortSets(t *testing.T) {
	s := value.Set{value.NewInt(3), value.Float(1.5), value.NewInt(-2), value.MustDecimal("2.5")}
	got, err := EncodeString(s, SortSets(true))
	if err != nil {
		t.Fatal(err)
	}
	if want := "#{-2 1.5 2.5M 3}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if s[0].(value.Int).Int64() != 3 {
		t.Error("SortSets modified its input")
	}
	_, err = EncodeString(value.Set{value.NewInt(1), value.String("a")}, SortSets(true))
	if !errors.Is(err, ErrIncomparable) {
		t.Errorf("error = %v, want ErrIncomparable", err)
	}
	got, err = EncodeString(value.Set{value.NewInt(2), value.NewInt(1)})
	if err != nil {
		t.Fatal(err)
	}
	if want := "#{2 1}"; got != want {
		t.Errorf("unsorted got %s, want %s", got, want)
	}
}

type opaque struct{ n int }

func TestUnsupportedType(t *testing.T) {
	_, err := EncodeString([]any{1, opaque{2}})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("error %v is not an *UnsupportedTypeError", err)
	}
	if ute.Type != "encode.opaque" {
		t.Errorf("Type = %q", ute.Type)
	}
	if !strings.Contains(err.Error(), "encode.opaque") {
		t.Errorf("error %q does not name the type", err)
	}
}

func TestPrettyNoop(t *testing.T) {
	v := map[string]any{"a": []any{1, map[string]any{"b": nil}}, "c": "d"}
	plain, err := EncodeString(v, SortKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	pretty, err := EncodeString(v, SortKeys(true), Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	if plain != pretty {
		t.Errorf("Pretty changed output:\n%s\n%s", plain, pretty)
	}
}

func TestMaxDepth(t *testing.T) {
	v := value.Vector{nil}
	v[0] = v
	_, err := EncodeString(v, MaxDepth(100))
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("cyclic vector error = %v, want ErrMaxDepth", err)
	}
	m := map[string]any{}
	m["m"] = m
	_, err = EncodeString(m)
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("cyclic map error = %v, want ErrMaxDepth", err)
	}
	deep := value.Value(value.NewInt(1))
	for range 5 {
		deep = value.Vector{deep}
	}
	if _, err := EncodeString(deep, MaxDepth(5)); err != nil {
		t.Errorf("depth 5 at limit 5: %v", err)
	}
	if _, err := EncodeString(deep, MaxDepth(4)); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("depth 5 at limit 4: %v", err)
	}
}

func TestOutputEncoding(t *testing.T) {
	d, err := EncodeBytes("é", OutputEncoding("latin1"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{'"', 0xe9, '"'}, d); diff != "" {
		t.Errorf("latin1 output (-want +got):\n%s", diff)
	}
	d, err = EncodeBytes("é")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("\"é\""), d); diff != "" {
		t.Errorf("utf-8 output (-want +got):\n%s", diff)
	}
	if _, err := EncodeBytes("世界", OutputEncoding("ISO-8859-1")); !errors.Is(err, ErrEncoding) {
		t.Errorf("unrepresentable error = %v, want ErrEncoding", err)
	}
	if _, err := EncodeBytes("x", OutputEncoding("no-such-charset")); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("unknown charset error = %v, want ErrUnknownEncoding", err)
	}
}

func TestStringEncoding(t *testing.T) {
	got, err := EncodeString([]byte{'c', 'a', 'f', 0xe9}, StringEncoding("latin1"))
	if err != nil {
		t.Fatal(err)
	}
	if want := `"café"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	got, err = EncodeString([]byte{0x63, 0x61, 0x66, 0xc3, 0xa9}, StringEncoding("windows-1252"))
	if err != nil {
		t.Fatal(err)
	}
	if want := `"cafÃ©"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := EncodeString([]byte{0xff, 0xfe}); !errors.Is(err, ErrEncoding) {
		t.Errorf("invalid utf-8 error = %v, want ErrEncoding", err)
	}
	if _, err := EncodeString("x", StringEncoding("bogus")); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("error = %v, want ErrUnknownEncoding", err)
	}
}

func TestNoPartialOutput(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode([]any{1, 2, make(chan int)}, buf)
	if err == nil {
		t.Fatal("expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
	if err := Encode(value.MustKeyword("ok"), buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ":ok" {
		t.Errorf("got %q", buf.String())
	}
}

func TestInvalidValues(t *testing.T) {
	for _, v := range []value.Value{
		value.Symbol{},
		value.Keyword{},
		value.Tagged{Elem: value.NewInt(1)},
		value.Tagged{Tag: value.Symbol{Name: "inst"}, Elem: value.NewInt(5)},
		value.Tagged{Tag: value.Symbol{Name: "uuid"}, Elem: value.String("x")},
		value.Date{Year: 2020, Month: time.February, Day: 31},
		value.Date{Year: 10000, Month: time.January, Day: 1},
		value.String("\xff"),
	} {
		if _, err := EncodeString(v); !errors.Is(err, ErrEncoding) {
			t.Errorf("EncodeString(%#v) error = %v, want ErrEncoding", v, err)
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeywordKeys = true
	cfg.SortKeys = true
	got, err := EncodeString(map[string]any{"b": 1, "a": 2}, WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if want := "{:a 2 :b 1}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	c := ConfigFromOpts(WithConfig(Config{}), SortSets(true))
	if c.MaxDepth != value.DefaultMaxDepth || !c.SortSets {
		t.Errorf("ConfigFromOpts = %+v", c)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	v := value.Map{{Key: value.MustKeyword("a"), Val: value.Vector{value.NewInt(1), value.String("50%")}}}
	got, err := EncodeString(v, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no color escapes in %q", got)
	}
	if !strings.Contains(got, `"50%"`) {
		t.Errorf("percent sign mangled in %q", got)
	}
	plain, err := EncodeString(v)
	if err != nil {
		t.Fatal(err)
	}
	if plain != `{:a [1 "50%"]}` {
		t.Errorf("plain = %s", plain)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString([]any{"a", 1}); got != `["a" 1]` {
		t.Errorf("got %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustString did not panic")
		}
	}()
	MustString(func() {})
}
