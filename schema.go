package tableschema

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/tableschema/internal/engine"
)

// DefaultFormatVersion is the JSON Table Schema revision implemented here.
const DefaultFormatVersion = "1.0-pre3.1"

const (
	keyFields  = "fields"
	keyVersion = "json_table_schema_version"
)

// Schema is an ordered set of uniquely named fields plus the format version
// of the document it was read from. A Schema is not safe for concurrent use.
type Schema struct {
	formatVersion string
	fields        []Field
	opt           Options
}

// New returns an empty schema carrying the default format version.
func New(opts ...Options) *Schema {
	opt := resolveOptions(opts)
	return &Schema{formatVersion: opt.defaultVersion(), opt: opt}
}

// Parse builds a schema from JSON text.
//
// Malformed JSON yields a *ParseError matching ErrNotJSON, unless
// Options.Lenient is set: then the failure is logged and an empty schema is
// returned.
func Parse(data []byte, opts ...Options) (*Schema, error) {
	opt := resolveOptions(opts)
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	s := New(opt)
	doc, err := decodeDocument(data, opt)
	if err != nil {
		if opt.Lenient && errors.Is(err, ErrNotJSON) {
			log := opt.logger()
			log.Error().Err(err).Msg("invalid JSON object; continuing with an empty schema")
			return s, nil
		}
		return nil, err
	}
	if err := s.Read(doc); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...Options) (*Schema, error) {
	opt := resolveOptions(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Err: err}
	}
	return Parse(data, opt)
}

func decodeDocument(data []byte, opt Options) (any, error) {
	doc, err := eng.DecodeBytes(data, opt.enforce())
	if err != nil {
		return nil, toParseError(err)
	}
	return doc, nil
}

// Read loads fields from a decoded document (the result of unmarshalling
// JSON into an any). Entries are added in order; on error the fields added
// before the failing entry stay in the schema.
func (s *Schema) Read(doc any) error {
	r := &reader{s: s}
	return r.read(doc)
}

// reader walks a document. With collect set it records every issue and keeps
// going instead of stopping at the first one.
type reader struct {
	s       *Schema
	collect bool
	issues  Issues
}

// fail returns err in fail-fast mode; in collect mode it records the issue,
// defaulting its path to at, and returns nil.
func (r *reader) fail(err error, at pathRef) error {
	if !r.collect {
		return err
	}
	iss, _ := AsIssues(err)
	for _, it := range iss {
		if it.Path == "" {
			it.Path = at.Pointer()
		}
		r.issues = AppendIssues(r.issues, it)
	}
	return nil
}

func (r *reader) read(doc any) error {
	root := rootPath()
	m, ok := doc.(map[string]any)
	if !ok {
		return r.fail(&FormatError{Code: CodeInvalidType, Path: root.Pointer(), Index: -1, Key: "document", Expected: "object"}, root)
	}

	fp := root.Field(keyFields)
	raw, ok := m[keyFields]
	if !ok {
		return r.fail(&FormatError{Code: CodeRequired, Path: fp.Pointer(), Index: -1, Key: keyFields}, fp)
	}
	list, ok := raw.([]any)
	if !ok {
		return r.fail(&FormatError{Code: CodeInvalidType, Path: fp.Pointer(), Index: -1, Key: keyFields, Expected: "array"}, fp)
	}

	for i, item := range list {
		if err := r.readEntry(i, item, fp.Index(i)); err != nil {
			return err
		}
	}

	if v, ok := m[keyVersion]; ok {
		vp := root.Field(keyVersion)
		version, ok := v.(string)
		if !ok {
			return r.fail(&FormatError{Code: CodeInvalidType, Path: vp.Pointer(), Index: -1, Key: keyVersion, Expected: "string"}, vp)
		}
		r.s.formatVersion = version
	}
	return nil
}

func (r *reader) readEntry(i int, item any, at pathRef) error {
	entry, ok := item.(map[string]any)
	if !ok {
		return r.fail(&FormatError{Code: CodeInvalidType, Path: at.Pointer(), Index: i, Key: fmt.Sprintf("%s[%d]", keyFields, i), Expected: "object"}, at)
	}
	for _, key := range r.s.opt.Variant.requiredKeys() {
		if _, ok := entry[key]; !ok {
			kp := at.Field(key)
			return r.fail(&FormatError{Code: CodeRequired, Path: kp.Pointer(), Index: i, Key: key}, kp)
		}
	}

	var f Field
	name, ok := entry["name"].(string)
	if !ok {
		kp := at.Field("name")
		return r.fail(&FormatError{Code: CodeInvalidType, Path: kp.Pointer(), Index: i, Key: "name", Expected: "string"}, kp)
	}
	f.Name = name
	if r.s.opt.Variant != VariantNamesOnly {
		typ, ok := entry["type"].(string)
		if !ok {
			kp := at.Field("type")
			return r.fail(&FormatError{Code: CodeInvalidType, Path: kp.Pointer(), Index: i, Key: "type", Expected: "string", Name: name}, kp)
		}
		f.Type = Type(typ)
	}
	if r.s.opt.KeepMetadata {
		if err := decodeMetadata(entry, &f); err != nil {
			return r.fail(&FormatError{Code: CodeInvalidType, Path: at.Pointer(), Index: i, Key: "metadata", Expected: "a valid descriptor attribute", Name: name, Cause: err}, at)
		}
	}
	if err := r.s.AddField(f); err != nil {
		return r.fail(err, at)
	}
	return nil
}

// AddField appends f after checking that its name is non-empty and unused
// and, for VariantTyped, that its type is in the vocabulary (or, with
// Options.AcceptIdentifiers, one of its external identifiers). The name check
// comes first, so a duplicate is reported even when its type is invalid.
func (s *Schema) AddField(f Field) error {
	if f.Name == "" {
		return &FormatError{Code: CodeRequired, Index: -1, Key: "name"}
	}
	if s.has(f.Name) {
		return &DuplicateFieldError{Name: f.Name}
	}
	if s.opt.Variant == VariantNamesOnly {
		f.Type = ""
	} else if err := s.checkType(f); err != nil {
		return err
	}
	if !s.opt.KeepMetadata {
		f = Field{Name: f.Name, Type: f.Type}
	}
	s.fields = append(s.fields, f.clone())
	return nil
}

// RemoveField drops the field with the given name.
func (s *Schema) RemoveField(name string) error {
	if !s.has(name) {
		return &FieldNotFoundError{Name: name}
	}
	kept := make([]Field, 0, len(s.fields)-1)
	for _, f := range s.fields {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	s.fields = kept
	return nil
}

func (s *Schema) checkType(f Field) error {
	if s.opt.AcceptIdentifiers {
		if _, ok := resolveType(f.Type); ok {
			return nil
		}
	}
	return CheckType(f.Type, f.Name)
}

func (s *Schema) has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Field returns the field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return Field{}, false
}

// FieldIDs returns the field names in column order.
func (s *Schema) FieldIDs() []string {
	ids := make([]string, len(s.fields))
	for i, f := range s.fields {
		ids[i] = f.Name
	}
	return ids
}

// Fields returns a copy of the fields in column order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.clone()
	}
	return out
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// FormatVersion returns the schema's json_table_schema_version.
func (s *Schema) FormatVersion() string {
	if s.formatVersion == "" {
		return s.opt.defaultVersion()
	}
	return s.formatVersion
}

// document is the wire form. Field order fixes the key order of AsJSON.
type document struct {
	Version string  `json:"json_table_schema_version"`
	Fields  []Field `json:"fields"`
}

func (s *Schema) document() document {
	return document{Version: s.FormatVersion(), Fields: s.Fields()}
}

// AsDict returns the schema as a map with exactly two keys,
// json_table_schema_version and fields.
func (s *Schema) AsDict() map[string]any {
	fields := make([]map[string]any, 0, len(s.fields))
	for _, f := range s.fields {
		fields = append(fields, f.asDict())
	}
	return map[string]any{
		keyVersion: s.FormatVersion(),
		keyFields:  fields,
	}
}

// AsJSON renders the schema as JSON indented by two spaces. HTML characters
// are written unescaped.
func (s *Schema) AsJSON() ([]byte, error) {
	return json.MarshalIndentWithOption(s.document(), "", "  ", json.DisableHTMLEscape())
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.MarshalWithOption(s.document(), json.DisableHTMLEscape())
}

// UnmarshalJSON replaces the schema with the one described by data, keeping
// the receiver's options.
func (s *Schema) UnmarshalJSON(data []byte) error {
	doc, err := decodeDocument(data, s.opt)
	if err != nil {
		return err
	}
	fresh := New(s.opt)
	if err := fresh.Read(doc); err != nil {
		return err
	}
	*s = *fresh
	return nil
}
