package edn

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/edn-format/go-edn/value"
)

// FromYAML reads the first document of a YAML stream into a value,
// keeping mapping order.
func FromYAML(d []byte) (value.Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return yamlValue(doc, 0)
}

func yamlValue(v any, depth int) (value.Value, error) {
	if depth > value.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: %w", ErrYAML, value.ErrMaxDepth)
	}
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(value.Map, 0, len(x))
		for _, item := range x {
			k, err := yamlValue(item.Key, depth+1)
			if err != nil {
				return nil, err
			}
			val, err := yamlValue(item.Value, depth+1)
			if err != nil {
				return nil, err
			}
			res = append(res, value.Entry{Key: k, Val: val})
		}
		return res, nil
	case []any:
		res := make(value.Vector, 0, len(x))
		for _, e := range x {
			ev, err := yamlValue(e, depth+1)
			if err != nil {
				return nil, err
			}
			res = append(res, ev)
		}
		return res, nil
	}
	res, err := value.From(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return res, nil
}
