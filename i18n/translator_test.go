package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("nil_instance", nil); msg != "Expected an instance, got nil" {
		t.Fatalf("expected the english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("nil_instance", nil); msg == "Expected an instance, got nil" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Interpolation(t *testing.T) {
	msg := T("child_missing", map[string]string{"name": "Obby"})
	if msg != `Cannot find child named "Obby" in instance` {
		t.Fatalf("unexpected message %q", msg)
	}
	msg = T("class_mismatch", map[string]string{"expected": "Folder", "actual": "Model"})
	if msg != `Expected an instance of class "Folder", got "Model"` {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected the raw code, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "CUSTOM:" + code }

func TestTranslator_Replaceable(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("nil_instance", nil); msg != "CUSTOM:nil_instance" {
		t.Fatalf("expected custom translator output, got %q", msg)
	}
	SetTranslator(nil) // restore the built-in dictionary
	if msg := T("nil_instance", nil); msg != "Expected an instance, got nil" {
		t.Fatalf("expected the default translator back, got %q", msg)
	}
}
