package i18n

// Translator retrieves localized expectation phrases for Issue codes.
// data provides optional metadata to embed in the phrase (for example,
// "expected" for literal decoders).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_bool":
			return "真偽値として解釈できる値 (true/false/1/0/null/undefined)"
		case "invalid_number":
			return "数値または数値文字列"
		case "invalid_string":
			return "真偽値・数値・文字列のいずれか"
		case "invalid_date":
			return "ISO 形式の日付文字列 (YYYY-MM-DD、任意で HH:MM:SS)"
		case "invalid_literal":
			if e, ok := data["expected"]; ok {
				return "リテラル " + e
			}
			return "指定されたリテラル"
		case "invalid_array":
			return "配列"
		case "invalid_value":
			return "妥当な値"
		case "parse_error":
			return "解析可能なドキュメント"
		}
	default: // "en"
		switch code {
		case "invalid_bool":
			return "a boolean-like value (one of true/false/1/0/null/undefined)"
		case "invalid_number":
			return "a numeric value or numeric string"
		case "invalid_string":
			return "a boolean, number or string"
		case "invalid_date":
			return "an ISO date string (YYYY-MM-DD, optionally with HH:MM:SS)"
		case "invalid_literal":
			if e, ok := data["expected"]; ok {
				return e
			}
			return "the configured literal"
		case "invalid_array":
			return "an array"
		case "invalid_value":
			return "a valid value"
		case "parse_error":
			return "a parseable document"
		}
	}
	return code
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

// T fetches a phrase for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
