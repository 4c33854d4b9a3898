package encode

import "github.com/signadot/edn-format/go-edn/value"

// Config holds every encoder option.
type Config struct {
	// StringEncoding decodes Bytes values before quoting.
	StringEncoding string
	// OutputEncoding encodes the finished text. Empty means UTF-8.
	OutputEncoding string
	// KeywordKeys renders String and Bytes map keys as keywords. A key
	// whose text is not a valid keyword, such as "" or "a b", fails the
	// call with ErrEncoding.
	KeywordKeys bool
	// SortKeys orders map entries by the text of their keys: the
	// unquoted text of String and Bytes keys, the EDN text of others.
	SortKeys bool
	// SortSets orders set elements with value.Compare.
	SortSets bool
	// Pretty is accepted and has no effect on output.
	Pretty bool
	// MaxDepth bounds nesting. Cyclic input fails with ErrMaxDepth.
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{
		StringEncoding: "utf-8",
		MaxDepth:       value.DefaultMaxDepth,
	}
}

type EncodeOption func(*EncState)

func StringEncoding(name string) EncodeOption {
	return func(es *EncState) { es.cfg.StringEncoding = name }
}
func OutputEncoding(name string) EncodeOption {
	return func(es *EncState) { es.cfg.OutputEncoding = name }
}
// KeywordKeys coerces String and Bytes map keys to keywords. Keys that
// are not valid keyword text fail with ErrEncoding.
func KeywordKeys(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.KeywordKeys = v }
}
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.SortKeys = v }
}
func SortSets(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.SortSets = v }
}
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.Pretty = v }
}
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.cfg.MaxDepth = n }
}
func WithConfig(c Config) EncodeOption {
	return func(es *EncState) { es.cfg = c }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// ConfigFromOpts returns the configuration resulting from opts.
func ConfigFromOpts(opts ...EncodeOption) Config {
	return newState(opts).cfg
}
