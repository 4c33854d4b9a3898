package encode

// MustString encodes v as EDN text and panics on error.
func MustString(v any, opts ...EncodeOption) string {
	s, err := EncodeString(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
