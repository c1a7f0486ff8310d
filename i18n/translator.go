package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key", "name" or "type"). Placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogs = map[string]map[string]string{
	"en": {
		"invalid_type":  "`{key}' must be {expected}",
		"required":      "required key `{key}' missing",
		"invalid_enum":  "invalid type `{type}' in field descriptor for `{name}'",
		"uniqueness":    "duplicate field name `{name}'",
		"not_found":     "field `{name}' not found",
		"duplicate_key": "duplicate object key",
		"parse_error":   "invalid JSON document",
		"truncated":     "input exceeds the size limit",
		"max_depth":     "input exceeds the nesting limit",
	},
	"ja": {
		"invalid_type":  "`{key}' は {expected} である必要があります",
		"required":      "必須キー `{key}' が不足しています",
		"invalid_enum":  "フィールド `{name}' の型 `{type}' は不正です",
		"uniqueness":    "フィールド名 `{name}' が重複しています",
		"not_found":     "フィールド `{name}' が見つかりません",
		"duplicate_key": "キーが重複しています",
		"parse_error":   "解析エラー",
		"truncated":     "入力がサイズ上限を超えています",
		"max_depth":     "入力がネスト上限を超えています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalogs[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
