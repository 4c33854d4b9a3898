package parse

import "github.com/signadot/edn-format/go-edn/value"

// TagHandler reads the element following a tag into a value.
type TagHandler func(elem value.Value) (value.Value, error)

type parseOpts struct {
	tags     map[string]TagHandler
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseTagHandler installs fn as the reader for #tag. It takes
// precedence over the built in #inst and #uuid readers.
func ParseTagHandler(tag string, fn TagHandler) ParseOption {
	return func(o *parseOpts) {
		if o.tags == nil {
			o.tags = map[string]TagHandler{}
		}
		o.tags[tag] = fn
	}
}

// ParseMaxDepth bounds collection nesting.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
