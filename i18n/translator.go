package i18n

import "sync"

// Translator retrieves localized messages for issue codes.
// data carries optional values to embed in the message (for example "key",
// "expected" or "section").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"invalid_type":    "invalid type",
		"required":        "required property missing",
		"unknown_key":     "unknown key",
		"duplicate_key":   "duplicate key",
		"invalid_enum":    "value is not one of the allowed values",
		"invalid_format":  "invalid format",
		"union_mismatch":  "value matches none of the allowed shapes",
		"uniqueness":      "identifier is not unique within its section",
		"parse_error":     "parse error",
		"too_big":         "input too large",
		"missing_section": "mandatory section missing",
		"missing_scalar":  "mandatory value missing",
	},
	"ja": {
		"invalid_type":    "型が不正です",
		"required":        "必須プロパティが不足しています",
		"unknown_key":     "未知のキーです",
		"duplicate_key":   "キーが重複しています",
		"invalid_enum":    "許可されていない値です",
		"invalid_format":  "形式が不正です",
		"union_mismatch":  "どの形式にも一致しません",
		"uniqueness":      "セクション内で識別子が重複しています",
		"parse_error":     "解析エラー",
		"too_big":         "入力が大きすぎます",
		"missing_section": "必須セクションがありません",
		"missing_scalar":  "必須の値がありません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := messages[t.lang][code]
	if !ok {
		return code
	}
	if key := data["key"]; key != "" {
		return msg + ": " + key
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	mu.Lock()
	currentTranslator = Dictionary(lang)
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// Dictionary returns the built-in Translator for lang; unknown languages fall back to "en".
func Dictionary(lang string) Translator {
	if _, ok := messages[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

// Current returns the Translator installed by SetLanguage or SetTranslator.
func Current() Translator {
	mu.RLock()
	defer mu.RUnlock()
	return currentTranslator
}
