// Package i18n looks up display strings in per-locale translation bundles and
// formats prices and dates for the active locale.
package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/erazemk/garagesale/assets"
)

// DefaultLocale is the fallback locale; its bundle defines every key.
const DefaultLocale = "en-US"

// Locales lists the supported locale codes.
var Locales = []string{"en-US", "en-GB", "es-ES", "fr-FR", "de-DE"}

// bundleFiles maps locale codes to bundle files in the locales FS.
var bundleFiles = map[string]string{
	"en-US": "en.yaml",
	"en-GB": "en.yaml",
	"es-ES": "es.yaml",
	"fr-FR": "fr.yaml",
	"de-DE": "de.yaml",
}

// Bundle is a nested tree of translation strings.
type Bundle map[string]any

// Lookup resolves a dot-separated key such as "filters.status.label".
func (b Bundle) Lookup(key string) (string, bool) {
	var node any = map[string]any(b)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// ParseBundle decodes a YAML translation bundle.
func ParseBundle(data []byte) (Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}
	return b, nil
}

// LoadBundle reads the bundle for locale from the embedded locales.
func LoadBundle(locale string) (Bundle, error) {
	return loadBundle(assets.LocalesFS(), locale)
}

func loadBundle(fsys fs.FS, locale string) (Bundle, error) {
	name, ok := bundleFiles[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %s: %w", name, err)
	}
	return ParseBundle(data)
}

// Translator resolves keys against the active bundle, then the default
// bundle, then returns the key itself. Safe for concurrent use.
type Translator struct {
	locale   string
	active   Bundle
	fallback Bundle
	logger   *slog.Logger

	mu     sync.Mutex
	warned map[string]bool
}

// NewTranslator builds a translator from explicit bundles.
func NewTranslator(locale string, active, fallback Bundle, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{
		locale:   locale,
		active:   active,
		fallback: fallback,
		logger:   logger,
		warned:   make(map[string]bool),
	}
}

// New loads the embedded bundles for locale. Unsupported locales fall back to
// DefaultLocale with a warning.
func New(locale string, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fallback, err := LoadBundle(DefaultLocale)
	if err != nil {
		return nil, err
	}
	if _, ok := bundleFiles[locale]; !ok {
		logger.Warn("unsupported locale, using default", "locale", locale, "default", DefaultLocale)
		locale = DefaultLocale
	}
	active, err := LoadBundle(locale)
	if err != nil {
		return nil, err
	}
	return NewTranslator(locale, active, fallback, logger), nil
}

// Locale returns the active locale code.
func (t *Translator) Locale() string {
	return t.locale
}

// Tag returns the active locale as a language tag.
func (t *Translator) Tag() language.Tag {
	tag, err := language.Parse(t.locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// T translates key, replacing {name} placeholders with vars.
func (t *Translator) T(key string, vars map[string]any) string {
	text, ok := t.active.Lookup(key)
	if !ok {
		text, ok = t.fallback.Lookup(key)
	}
	if !ok {
		t.warnMissing(key)
		return key
	}
	for name, v := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprint(v))
	}
	return text
}

func (t *Translator) warnMissing(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.warned[key] {
		return
	}
	t.warned[key] = true
	t.logger.Warn("missing translation key", "key", key, "locale", t.locale)
}
