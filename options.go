package tableschema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"

	eng "github.com/reoring/tableschema/internal/engine"
)

// Variant selects which rule set a Schema applies to field descriptors.
type Variant int

const (
	// VariantTyped requires `name` and `type` on every descriptor and checks
	// the type against the closed vocabulary.
	VariantTyped Variant = iota
	// VariantNamesOnly requires only `name`; types are neither checked nor kept.
	VariantNamesOnly
)

// requiredKeys returns the descriptor keys every field must carry.
func (v Variant) requiredKeys() []string {
	if v == VariantNamesOnly {
		return []string{"name"}
	}
	return []string{"name", "type"}
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate JSON object keys.
type Strictness struct {
	OnDuplicateKey Severity
}

func (s Strictness) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.OnDuplicateKey, validation.In(Ignore, Warn, Error)),
	)
}

// Options bundles schema and parsing options. When several are passed to a
// function the last one wins.
type Options struct {
	Variant Variant
	// FormatVersion replaces DefaultFormatVersion for schemas whose document
	// carries no json_table_schema_version.
	FormatVersion string
	// AcceptIdentifiers also accepts the external identifiers listed by
	// Identifiers as field types. The type is kept as written.
	AcceptIdentifiers bool
	// KeepMetadata retains title, format, description and constraints.
	KeepMetadata bool
	// Lenient logs malformed JSON and yields an empty schema instead of
	// returning an error.
	Lenient    bool
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	// Logger receives diagnostics; nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Variant, validation.In(VariantTyped, VariantNamesOnly)),
		validation.Field(&o.Strictness),
		validation.Field(&o.MaxDepth, validation.Min(0)),
		validation.Field(&o.MaxBytes, validation.Min(int64(0))),
	)
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

func (o Options) defaultVersion() string {
	if o.FormatVersion != "" {
		return o.FormatVersion
	}
	return DefaultFormatVersion
}

func (o Options) enforce() eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: o.MaxDepth, MaxBytes: o.MaxBytes}
	switch o.Strictness.OnDuplicateKey {
	case Error:
		eo.OnDuplicate = eng.DupError
	case Warn:
		eo.OnDuplicate = eng.DupWarn
		log := o.logger()
		eo.IssueSink = func(si eng.SimpleIssue) {
			log.Warn().Str("path", si.Path).Msg(si.Message)
		}
	}
	return eo
}

func resolveOptions(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
