package ui

import (
	"strings"
	"testing"
)

func TestNewLocalization(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("GetCurrentLanguage() = %v, expected en", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAppTitle); got != "Desktop Application with Auto-Update" {
		t.Errorf("GetText(KeyAppTitle) = %v, expected Desktop Application with Auto-Update", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected string
	}{
		{"spanish", "es", "es"},
		{"english", "en", "en"},
		{"unknown language ignored", "xx", "en"},
		{"empty ignored", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if l.GetCurrentLanguage() != tt.expected {
				t.Errorf("GetCurrentLanguage() = %v, expected %v", l.GetCurrentLanguage(), tt.expected)
			}
		})
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("es")

	if got := l.GetText(KeyQuit); got != "Salir" {
		t.Errorf("GetText(KeyQuit) = %v, expected Salir", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing_key) = %v, expected the key itself", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("language %s has no texts", code)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("language %s is missing key %s", code, key)
			}
		}
	}
}

func TestLocalization_FormatKeysKeepVerbs(t *testing.T) {
	formatKeys := []string{KeyExportedTo, KeyExportFailed, KeySampleAdded, KeyAvailable, KeyUpdateStatus, KeyErrorPrefix}
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		l.SetLanguage(code)
		for _, key := range formatKeys {
			if !strings.Contains(l.GetText(key), "%") {
				t.Errorf("%s text for %s lost its format verb", code, key)
			}
		}
	}
}
