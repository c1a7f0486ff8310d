package tableschema

import (
	"math"

	js "github.com/reoring/tableschema/jsonschema"
)

// RowJSONSchema projects the fields into a JSON Schema describing one row as
// an object keyed by field name. Fields whose constraints mark them required
// are listed in Required. Types without a JSON Schema counterpart (geopoint,
// geojson, any) are left unconstrained, as are constraint values of the wrong
// kind for their keyword.
func (s *Schema) RowJSONSchema() *js.Schema {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(s.fields))}
	for _, f := range s.fields {
		label, _ := resolveType(f.Type)
		p := propertyFor(label)
		p.Title, _ = f.Title.(string)
		p.Description, _ = f.Description.(string)
		if c := f.Constraints; c != nil {
			if req, _ := c.Required.(bool); req {
				out.Required = append(out.Required, f.Name)
			}
			if p.Type == "string" {
				p.Pattern, _ = c.Pattern.(string)
				p.MinLength = lengthValue(c.MinLength)
				p.MaxLength = lengthValue(c.MaxLength)
			}
			if p.Type == "number" || p.Type == "integer" {
				p.Minimum = numberValue(c.Minimum)
				p.Maximum = numberValue(c.Maximum)
			}
		}
		out.Properties[f.Name] = p
	}
	return out
}

func propertyFor(t Type) *js.Schema {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeObject, TypeArray:
		return &js.Schema{Type: string(t)}
	case TypeDate:
		return &js.Schema{Type: "string", Format: "date"}
	case TypeTime:
		return &js.Schema{Type: "string", Format: "time"}
	case TypeDateTime:
		return &js.Schema{Type: "string", Format: "date-time"}
	case TypeBinary:
		return &js.Schema{Type: "string", ContentEncoding: "base64"}
	default:
		return &js.Schema{}
	}
}

// lengthValue returns v as a non-negative whole number, or nil.
func lengthValue(v any) *int {
	f, ok := numberValue(v).(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// numberValue returns v as a float64 when it is numeric, or nil.
func numberValue(v any) any {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return nil
}
