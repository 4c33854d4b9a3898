// Package format names the document formats the edn command reads.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if f, ok := format.FromPath("config.yaml"); ok {
//	    // f == format.YAMLFormat
//	}
//
// # Related Packages
//
//   - github.com/signadot/edn-format/go-edn/encode - Encode values to EDN text
package format
