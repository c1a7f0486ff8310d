// Package tableschema models JSON Table Schema documents: an ordered list of
// uniquely named, typed fields plus a format version.
//
// - Parse/ParseReader/FromYAML build a Schema from a document; Read loads an
//   already decoded one.
// - AddField is the only way fields enter a Schema and enforces name
//   uniqueness and the closed type vocabulary (see Types).
// - AsDict/AsJSON export the schema; RowJSONSchema projects it to JSON Schema.
// - Errors are typed (FormatError, DuplicateFieldError, FieldNotFoundError,
//   ParseError), match sentinel errors via errors.Is, and convert to the
//   Issue model via AsIssues. Check collects every issue of a document.
//
// Typical usage:
//
//	s, err := tableschema.Parse(data)
//	if errors.Is(err, tableschema.ErrDuplicateField) { ... }
//	out, err := s.AsJSON()
package tableschema
