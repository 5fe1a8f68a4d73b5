package i18n

import "fmt"

// Translator renders localized messages for Mismatch codes.
// data provides the parameters to embed in the message (for example,
// "expected" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string { return data[k] }
	switch t.lang {
	case "ja":
		switch code {
		case "nil_instance":
			return "インスタンスが必要ですが、nil でした"
		case "class_mismatch":
			return fmt.Sprintf("クラス %q のインスタンスが必要ですが、%q でした", get("expected"), get("actual"))
		case "not_a":
			return fmt.Sprintf("%q を継承するインスタンスが必要ですが、%q でした", get("expected"), get("actual"))
		case "attribute_missing":
			return fmt.Sprintf("属性 %q が必要です", get("name"))
		case "property_missing":
			return fmt.Sprintf("クラス %q のインスタンスにプロパティ %q が必要です", get("class"), get("name"))
		case "type_mismatch":
			return fmt.Sprintf("%q は %s 型が必要ですが、%s 型でした", get("name"), get("expected"), get("actual"))
		case "value_mismatch":
			return fmt.Sprintf("%q は %s が必要ですが、%s でした", get("name"), get("expected"), get("actual"))
		case "child_missing":
			return fmt.Sprintf("%q という名前の子が見つかりません", get("name"))
		case "child_mismatch":
			return fmt.Sprintf("%q という名前の子が一致しません; %s", get("name"), get("reason"))
		}
	default: // "en"
		switch code {
		case "nil_instance":
			return "Expected an instance, got nil"
		case "class_mismatch":
			return fmt.Sprintf("Expected an instance of class %q, got %q", get("expected"), get("actual"))
		case "not_a":
			return fmt.Sprintf("Expected an instance which is a %q, got %q", get("expected"), get("actual"))
		case "attribute_missing":
			return fmt.Sprintf("Expected attribute named %q", get("name"))
		case "property_missing":
			return fmt.Sprintf("Expected instance of class %q to have property %q", get("class"), get("name"))
		case "type_mismatch":
			return fmt.Sprintf("Expected %q to be of type %s, got a value of type %s", get("name"), get("expected"), get("actual"))
		case "value_mismatch":
			return fmt.Sprintf("Expected %q to equal %s, got %s", get("name"), get("expected"), get("actual"))
		case "child_missing":
			return fmt.Sprintf("Cannot find child named %q in instance", get("name"))
		case "child_mismatch":
			return fmt.Sprintf("Cannot match child named %q in instance; %s", get("name"), get("reason"))
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

// T renders a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
