// Package token provides EDN string quoting and tokenization.
//
// Quote produces the double quoted literal for a string, escaping
// backslash, double quote and the control characters U+0000 through
// U+001F. Unquote reverses it.
//
// Tokenize splits EDN text into tokens with positions, for use by
// the reader in github.com/signadot/edn-format/go-edn/parse.
package token
