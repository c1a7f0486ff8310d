package tableschema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a schema from a YAML encoding of the same document Parse
// accepts. Options.Lenient does not apply; malformed YAML is always an error.
func FromYAML(data []byte, opts ...Options) (*Schema, error) {
	opt := resolveOptions(opts)
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, &ParseError{Code: CodeTruncated, Path: "/"}
	}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Err: err}
	}
	s := New(opt)
	if err := s.Read(yamlNormalizeValue(node)); err != nil {
		return nil, err
	}
	return s, nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like values recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
