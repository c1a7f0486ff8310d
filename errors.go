package tableschema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/tableschema/i18n"
	eng "github.com/reoring/tableschema/internal/engine"
)

// Issue codes
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeInvalidEnum  = "invalid_enum"
	CodeUniqueness   = "uniqueness"
	CodeNotFound     = "not_found"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
	CodeMaxDepth     = "max_depth"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrFormat         = errors.New("tableschema: format error")
	ErrDuplicateField = errors.New("tableschema: duplicate field id")
	ErrFieldNotFound  = errors.New("tableschema: field not found")
	ErrNotJSON        = errors.New("tableschema: invalid JSON document")
	ErrInvalidOptions = errors.New("tableschema: invalid options")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /fields/2/type).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries the structured context of the issue (index, key, name,
	// type) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// issuer is implemented by every typed error of this package.
type issuer interface {
	Issue() Issue
}

// AsIssues extracts Issues from an error. A single typed error (FormatError,
// DuplicateFieldError, ...) yields a one-element slice.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it issuer
	if errors.As(err, &it) {
		return Issues{it.Issue()}, true
	}
	return nil, false
}

// FormatError reports a structural or semantic problem with a schema
// document or with a field passed to AddField. Index is -1 when the problem
// is not tied to a field descriptor.
type FormatError struct {
	Code     string
	Path     string
	Index    int
	Key      string // offending document key, e.g. "fields", "name", "type"
	Expected string // expected JSON kind for invalid_type
	Name     string // field name, when known
	Type     string // rejected type label for invalid_enum
	Cause    error
}

func (e *FormatError) params() map[string]string {
	p := map[string]string{
		"key":      e.Key,
		"expected": e.Expected,
		"name":     e.Name,
		"type":     e.Type,
	}
	if e.Index >= 0 {
		p["index"] = strconv.Itoa(e.Index)
	}
	return p
}

func (e *FormatError) Error() string {
	msg := "tableschema: " + i18n.T(e.Code, e.params())
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func (e *FormatError) Unwrap() error { return e.Cause }

// Issue converts the error into the issue model.
func (e *FormatError) Issue() Issue {
	params := map[string]any{}
	for k, v := range e.params() {
		if v != "" {
			params[k] = v
		}
	}
	if e.Index >= 0 {
		params["index"] = e.Index
	}
	return Issue{Path: e.Path, Code: e.Code, Message: i18n.T(e.Code, e.params()), Cause: e.Cause, Params: params}
}

// DuplicateFieldError is returned when a field name is already present.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return "tableschema: " + i18n.T(CodeUniqueness, map[string]string{"name": e.Name})
}

func (e *DuplicateFieldError) Is(target error) bool { return target == ErrDuplicateField }

func (e *DuplicateFieldError) Issue() Issue {
	return Issue{Code: CodeUniqueness, Message: i18n.T(CodeUniqueness, map[string]string{"name": e.Name}), Params: map[string]any{"name": e.Name}}
}

// FieldNotFoundError is returned by RemoveField for an unknown name.
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	return "tableschema: " + i18n.T(CodeNotFound, map[string]string{"name": e.Name})
}

func (e *FieldNotFoundError) Is(target error) bool { return target == ErrFieldNotFound }

func (e *FieldNotFoundError) Issue() Issue {
	return Issue{Code: CodeNotFound, Message: i18n.T(CodeNotFound, map[string]string{"name": e.Name}), Params: map[string]any{"name": e.Name}}
}

// ParseError reports input that could not be decoded into a document:
// malformed JSON or YAML (parse_error), a duplicate object key under
// Strictness Error (duplicate_key), or an exceeded size limit (truncated).
type ParseError struct {
	Code string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	msg := "tableschema: " + i18n.T(e.Code, nil)
	if e.Path != "" && e.Path != "/" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches ErrNotJSON for malformed input only.
func (e *ParseError) Is(target error) bool {
	return target == ErrNotJSON && e.Code == CodeParseError
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Issue() Issue {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return Issue{Path: path, Code: e.Code, Message: i18n.T(e.Code, nil), Cause: e.Err}
}

// toParseError maps decoder failures into ParseError.
func toParseError(err error) *ParseError {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &ParseError{Code: ie.Code, Path: ie.Path, Err: errors.New(ie.Message)}
	}
	return &ParseError{Code: CodeParseError, Path: "/", Err: err}
}
