package tableschema

// Type is a field type label from the closed vocabulary.
type Type string

const (
	TypeString   Type = "string"
	TypeNumber   Type = "number"
	TypeInteger  Type = "integer"
	TypeDate     Type = "date"
	TypeTime     Type = "time"
	TypeDateTime Type = "date-time"
	TypeBoolean  Type = "boolean"
	TypeBinary   Type = "binary"
	TypeObject   Type = "object"
	TypeGeoPoint Type = "geopoint"
	TypeGeoJSON  Type = "geojson"
	TypeArray    Type = "array"
	TypeAny      Type = "any"
)

// vocabulary lists every valid label with the external identifiers it
// corresponds to. Identifiers are informational; matching is on the label.
var vocabulary = [...]struct {
	label       Type
	identifiers []string
}{
	{TypeString, []string{"http://www.w3.org/2001/XMLSchema#string"}},
	{TypeNumber, []string{"http://www.w3.org/2001/XMLSchema#float"}},
	{TypeInteger, []string{"http://www.w3.org/2001/XMLSchema#int", "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"}},
	{TypeDate, nil},
	{TypeTime, nil},
	{TypeDateTime, []string{"http://www.w3.org/2001/XMLSchema#dateTime"}},
	{TypeBoolean, []string{"http://www.w3.org/2001/XMLSchema#boolean"}},
	{TypeBinary, nil},
	{TypeObject, []string{"http://www.elasticsearch.org/guide/en/elasticsearch/reference/current/mapping-object-type.html"}},
	{TypeGeoPoint, []string{"http://www.elasticsearch.org/guide/en/elasticsearch/reference/current/mapping-geo-point-type.html"}},
	{TypeGeoJSON, nil},
	{TypeArray, []string{"http://www.elasticsearch.org/guide/en/elasticsearch/reference/current/mapping-array-type.html"}},
	{TypeAny, []string{"http://www.w3.org/2001/XMLSchema#anyURI"}},
}

// IsValidType reports whether t exactly matches a vocabulary label.
func IsValidType(t Type) bool {
	for _, e := range vocabulary {
		if e.label == t {
			return true
		}
	}
	return false
}

// CheckType returns a FormatError naming both the type and the field when t
// is not a vocabulary label.
func CheckType(t Type, field string) error {
	if IsValidType(t) {
		return nil
	}
	return &FormatError{Code: CodeInvalidEnum, Index: -1, Key: "type", Name: field, Type: string(t)}
}

// resolveType returns the label t names, matching either a label or one of
// the external identifiers.
func resolveType(t Type) (Type, bool) {
	for _, e := range vocabulary {
		if e.label == t {
			return e.label, true
		}
		for _, id := range e.identifiers {
			if Type(id) == t {
				return e.label, true
			}
		}
	}
	return "", false
}

// Types returns all labels in canonical order.
func Types() []Type {
	out := make([]Type, len(vocabulary))
	for i, e := range vocabulary {
		out[i] = e.label
	}
	return out
}

// Identifiers returns the external identifiers recorded for t, or nil.
func Identifiers(t Type) []string {
	for _, e := range vocabulary {
		if e.label == t {
			return append([]string(nil), e.identifiers...)
		}
	}
	return nil
}
