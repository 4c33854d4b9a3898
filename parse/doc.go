// Package parse reads EDN text into values.
//
// # Usage
//
//	// Parse a single form
//	v, err := parse.Parse([]byte(`{:name "alice" :tags #{:a :b}}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse every top level form
//	vs, err := parse.ParseAll(data)
//
//	// Install a reader for a custom tag
//	v, err := parse.Parse(data, parse.ParseTagHandler("myapp/Point", readPoint))
//
// #inst and #uuid are read into value.Inst, value.Date and value.UUID.
// Other tags without a handler are kept as value.Tagged. Character
// literals are rejected: the value model has no character type.
//
// # Related Packages
//
//   - github.com/signadot/edn-format/go-edn/value - Value model
//   - github.com/signadot/edn-format/go-edn/encode - Encode values to EDN text
//   - github.com/signadot/edn-format/go-edn/token - Tokenization
package parse
