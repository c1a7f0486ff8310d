package tableschema

import (
	"github.com/mitchellh/mapstructure"
)

// Field describes one column of a table. Metadata attributes hold the
// decoded descriptor values exactly as given; they are not validated.
type Field struct {
	Name        string       `json:"name"`
	Type        Type         `json:"type,omitempty"`
	Title       any          `json:"title,omitempty"`
	Format      any          `json:"format,omitempty"`
	Description any          `json:"description,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
}

// Constraints carries the recognized constraint keys of a field descriptor.
// Values are passed through as given; other keys are dropped.
type Constraints struct {
	Required  any `json:"required,omitempty"`
	MinLength any `json:"minLength,omitempty"`
	MaxLength any `json:"maxLength,omitempty"`
	Unique    any `json:"unique,omitempty"`
	Pattern   any `json:"pattern,omitempty"`
	Minimum   any `json:"minimum,omitempty"`
	Maximum   any `json:"maximum,omitempty"`
}

// decodeMetadata fills the optional descriptor attributes of f from entry.
// Only a non-object constraints value fails.
func decodeMetadata(entry map[string]any, f *Field) error {
	meta := struct {
		Title       any          `json:"title"`
		Format      any          `json:"format"`
		Description any          `json:"description"`
		Constraints *Constraints `json:"constraints"`
	}{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &meta,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(entry); err != nil {
		return err
	}
	f.Title = meta.Title
	f.Format = meta.Format
	f.Description = meta.Description
	f.Constraints = meta.Constraints
	return nil
}

func (f Field) asDict() map[string]any {
	m := map[string]any{"name": f.Name}
	if f.Type != "" {
		m["type"] = string(f.Type)
	}
	putIfSet(m, "title", f.Title)
	putIfSet(m, "format", f.Format)
	putIfSet(m, "description", f.Description)
	if f.Constraints != nil {
		m["constraints"] = f.Constraints.asDict()
	}
	return m
}

func (c *Constraints) asDict() map[string]any {
	m := map[string]any{}
	putIfSet(m, "required", c.Required)
	putIfSet(m, "minLength", c.MinLength)
	putIfSet(m, "maxLength", c.MaxLength)
	putIfSet(m, "unique", c.Unique)
	putIfSet(m, "pattern", c.Pattern)
	putIfSet(m, "minimum", c.Minimum)
	putIfSet(m, "maximum", c.Maximum)
	return m
}

func putIfSet(m map[string]any, key string, v any) {
	if v != nil {
		m[key] = copyValue(v)
	}
}

func (f Field) clone() Field {
	f.Title = copyValue(f.Title)
	f.Format = copyValue(f.Format)
	f.Description = copyValue(f.Description)
	if f.Constraints != nil {
		c := Constraints{
			Required:  copyValue(f.Constraints.Required),
			MinLength: copyValue(f.Constraints.MinLength),
			MaxLength: copyValue(f.Constraints.MaxLength),
			Unique:    copyValue(f.Constraints.Unique),
			Pattern:   copyValue(f.Constraints.Pattern),
			Minimum:   copyValue(f.Constraints.Minimum),
			Maximum:   copyValue(f.Constraints.Maximum),
		}
		f.Constraints = &c
	}
	return f
}

// copyValue deep-copies the maps and slices of a decoded JSON value.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = copyValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = copyValue(vv)
		}
		return out
	default:
		return v
	}
}
