package edn

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// PatchJSON applies an RFC 6902 JSON patch to a JSON document.
func PatchJSON(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return out, nil
}
