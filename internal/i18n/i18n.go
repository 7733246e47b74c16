// Package i18n provides the user-facing messages of the whitelist form and
// CLI. Translations are embedded YAML files loaded with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads the embedded locale files and activates lang. Unknown languages
// fall back to English message by message.
func Init(lang string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return fmt.Errorf("failed to read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
		}
		if _, err = b.ParseMessageFileBytes(data, f.Name()); err != nil {
			return fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang, language.English.String())
	current = lang
	return nil
}

// T translates a message by its ID. The ID itself is returned when no
// translation exists. T initializes English on first use.
func T(messageID string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		if err := Init("en"); err != nil {
			return messageID
		}
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Lang returns the active language tag.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Languages returns the tags of all embedded locales.
func Languages() []string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		if err := Init("en"); err != nil {
			return nil
		}
		mu.RLock()
		b = bundle
		mu.RUnlock()
	}

	tags := b.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}
