package i18n

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

const (
	// DefaultLocale is used when no default locale is configured.
	DefaultLocale = "en"
	// DefaultNamespace is both the default and the fallback namespace.
	DefaultNamespace = "common"
)

// Table is the locale resource table: one Bundle per supported locale.
// It is immutable after New returns and safe to share between requests.
type Table struct {
	bundles           map[string]*Bundle
	locales           []string
	defaultLocale     string
	defaultNamespace  string
	missingKeyHandler func(locale, namespace, key string)
}

// Option configures the Table during construction.
type Option func(*builder) error

type builder struct {
	raw               map[string]map[string]map[string]string
	declared          []string
	defaultLocale     string
	defaultNamespace  string
	missingKeyHandler func(locale, namespace, key string)
}

// New builds a Table from the given options.
// It fails with ErrMissingBundle when a supported locale has no resources.
func New(opts ...Option) (*Table, error) {
	b := &builder{
		raw:              make(map[string]map[string]map[string]string),
		defaultLocale:    DefaultLocale,
		defaultNamespace: DefaultNamespace,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(b.declared) > 0 && !slices.Contains(b.declared, b.defaultLocale) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, b.defaultLocale)
	}
	locales := b.supported()

	t := &Table{
		bundles:           make(map[string]*Bundle, len(locales)),
		locales:           locales,
		defaultLocale:     b.defaultLocale,
		defaultNamespace:  b.defaultNamespace,
		missingKeyHandler: b.missingKeyHandler,
	}

	for _, locale := range locales {
		namespaces, ok := b.raw[locale]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingBundle, locale)
		}
		t.bundles[locale] = &Bundle{locale: locale, namespaces: namespaces}
	}

	return t, nil
}

// supported returns the declared locales, or the loaded ones when none were
// declared. The default locale always comes first.
func (b *builder) supported() []string {
	set := make(map[string]struct{})
	if len(b.declared) > 0 {
		for _, l := range b.declared {
			set[l] = struct{}{}
		}
	} else {
		for l := range b.raw {
			set[l] = struct{}{}
		}
	}
	delete(set, b.defaultLocale)

	others := slices.Collect(maps.Keys(set))
	sort.Strings(others)
	return append([]string{b.defaultLocale}, others...)
}

func (b *builder) add(locale, namespace string, translations map[string]any) {
	locale = normalize(locale)
	if _, ok := b.raw[locale]; !ok {
		b.raw[locale] = make(map[string]map[string]string)
	}
	keys, ok := b.raw[locale][namespace]
	if !ok {
		keys = make(map[string]string)
		b.raw[locale][namespace] = keys
	}
	maps.Copy(keys, flattenTranslations(translations, ""))
}

// WithDefaultLocale sets the fallback locale. It must be a supported locale.
func WithDefaultLocale(locale string) Option {
	return func(b *builder) error {
		locale = normalize(locale)
		if locale == "" {
			return ErrEmptyLocale
		}
		b.defaultLocale = locale
		return nil
	}
}

// WithLocales declares the supported locale set. Without it, every locale that
// has resources is supported.
func WithLocales(locales ...string) Option {
	return func(b *builder) error {
		for _, l := range locales {
			l = normalize(l)
			if l == "" {
				return ErrEmptyLocale
			}
			b.declared = append(b.declared, l)
		}
		return nil
	}
}

// WithDefaultNamespace overrides the "common" namespace.
func WithDefaultNamespace(namespace string) Option {
	return func(b *builder) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		b.defaultNamespace = namespace
		return nil
	}
}

// WithTranslations adds translations for one locale and namespace.
// Nested maps are flattened into dotted keys.
func WithTranslations(locale, namespace string, translations map[string]any) Option {
	return func(b *builder) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		b.add(locale, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler registers a callback invoked when a key cannot be
// resolved in any candidate locale or namespace.
func WithMissingKeyHandler(handler func(locale, namespace, key string)) Option {
	return func(b *builder) error {
		b.missingKeyHandler = handler
		return nil
	}
}

// Locales returns the supported locales, default first.
func (t *Table) Locales() []string {
	return slices.Clone(t.locales)
}

// DefaultLocale returns the fallback locale.
func (t *Table) DefaultLocale() string {
	return t.defaultLocale
}

// DefaultNamespace returns the default and fallback namespace.
func (t *Table) DefaultNamespace() string {
	return t.defaultNamespace
}

// Bundle returns the bundle for a supported locale.
func (t *Table) Bundle(locale string) (*Bundle, bool) {
	b, ok := t.bundles[locale]
	return b, ok
}

// Supports reports whether locale is in the supported set as given.
func (t *Table) Supports(locale string) bool {
	_, ok := t.bundles[locale]
	return ok
}

// Match maps a raw locale signal to a supported locale.
// Matching is case-insensitive and falls back to the base language,
// so "SK", "sk-SK" and "sk_sk" all resolve to "sk".
func (t *Table) Match(raw string) (string, bool) {
	locale := normalize(raw)
	if locale == "" || len(locale) > 35 {
		return "", false
	}
	if t.Supports(locale) {
		return locale, true
	}
	if base := baseLanguage(locale); base != locale && t.Supports(base) {
		return base, true
	}
	return "", false
}

// Check verifies that every supported locale carries the default namespace.
// It matches the readiness check signature.
func (t *Table) Check(_ context.Context) error {
	for _, locale := range t.locales {
		b, ok := t.bundles[locale]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingBundle, locale)
		}
		if !b.HasNamespace(t.defaultNamespace) {
			return fmt.Errorf("%w: %q has no %q namespace", ErrMissingBundle, locale, t.defaultNamespace)
		}
	}
	return nil
}

// lookup resolves ns:key for locale, then its base language, then the default locale.
func (t *Table) lookup(locale, namespace, key string) (string, bool) {
	for _, candidate := range t.candidates(locale) {
		if b, ok := t.bundles[candidate]; ok {
			if text, ok := b.Lookup(namespace, key); ok {
				return text, true
			}
		}
	}
	return "", false
}

func (t *Table) candidates(locale string) []string {
	out := make([]string, 0, 3)
	for _, c := range []string{locale, baseLanguage(locale), t.defaultLocale} {
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func (t *Table) missing(locale, namespace, key string) {
	if t.missingKeyHandler != nil {
		t.missingKeyHandler(locale, namespace, key)
	}
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprint(v)
		}
	}

	return result
}

// normalize lowercases a locale and uses "-" as the subtag separator.
func normalize(locale string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), "_", "-")
}

// baseLanguage strips the region: "sk-sk" -> "sk".
func baseLanguage(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
