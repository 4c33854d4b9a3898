package encode

import (
	"strings"

	"github.com/signadot/edn-format/go-edn/value"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	DelimColor
	KeyColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the terminal color scheme. Colored output is for
// display and is not EDN.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range value.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = DelimColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range value.Kinds() {
		if k.IsNumber() {
			able.Kind = k
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		}
	}
	able.Kind = value.NilKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = value.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = value.KeywordKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Kind = value.SymbolKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	for _, k := range []value.Kind{value.StringKind, value.BytesKind, value.InstKind, value.DateKind, value.UUIDKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
