package i18n

import (
	"os"
	"sort"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestT_English(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if got := T("error.empty_input"); got != "❌ Enter an SSID or a MAC address (at least one)." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("success.inserted"); got != "✔ Device successfully whitelisted!" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if Lang() != "en" {
		t.Fatalf("expected active language en, got %q", Lang())
	}
}

func TestT_German(t *testing.T) {
	if err := Init("de"); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = Init("en") })

	if got := T("form.submit"); got != "Zur Whitelist hinzufügen" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	if err := Init("xx"); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = Init("en") })

	if got := T("form.title"); got != "Whitelist device" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestT_UnknownIDReturnsID(t *testing.T) {
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message id, got %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	sort.Strings(langs)
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	en := loadKeys(t, "locales/active.en.yaml")
	de := loadKeys(t, "locales/active.de.yaml")

	for k := range en {
		if _, ok := de[k]; !ok {
			t.Errorf("de locale misses %s", k)
		}
	}
	for k := range de {
		if _, ok := en[k]; !ok {
			t.Errorf("de locale has orphaned key %s", k)
		}
	}
}

func loadKeys(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	out := map[string]string{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return out
}
