package edn

import (
	"errors"
	"strings"

	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Canonical renders v with sorted map keys and, where the elements are
// comparable, sorted sets.
func Canonical(v value.Value, opts ...encode.EncodeOption) (string, error) {
	opts = append(opts, encode.SortKeys(true))
	s, err := encode.EncodeString(v, append(opts, encode.SortSets(true))...)
	if errors.Is(err, encode.ErrIncomparable) {
		return encode.EncodeString(v, opts...)
	}
	return s, err
}

// Diff compares a and b under EDN equality. When they differ it returns
// a character level diff of their canonical renderings, marking deleted
// text [-like this-] and inserted text {+like this+}, or with terminal
// colors when color is set.
func Diff(a, b value.Value, color bool) (string, bool, error) {
	if value.Equal(a, b) {
		return "", false, nil
	}
	at, err := Canonical(a)
	if err != nil {
		return "", false, err
	}
	bt, err := Canonical(b)
	if err != nil {
		return "", false, err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(at, bt, false))
	if color {
		return dmp.DiffPrettyText(diffs), true, nil
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String(), true, nil
}
